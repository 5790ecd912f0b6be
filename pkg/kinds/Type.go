package kinds

import "github.com/simplecontainer/inventory/pkg/contracts/ikinds"

type Registry struct {
	Kinds   map[string]ikinds.Kind
	Aliases map[string]string
	Order   []string
}
