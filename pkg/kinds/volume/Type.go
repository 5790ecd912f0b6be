package volume

const KIND string = "volume"

var ALIASES = []string{"volumes", "vol"}

// Volume is the normalized form of an engine volume. The engine has no
// separate volume id; ID carries the name.
//
// RefCount and Size are only known when the engine computed usage data.
type Volume struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	Driver     string            `json:"driver" yaml:"driver"`
	Mountpoint string            `json:"mountpoint" yaml:"mountpoint"`
	Scope      string            `json:"scope" yaml:"scope"`
	CreatedAt  string            `json:"created_at" yaml:"created_at"`
	Labels     map[string]string `json:"labels" yaml:"labels"`
	Options    map[string]string `json:"options" yaml:"options"`
	RefCount   *int64            `json:"ref_count" yaml:"ref_count"`
	Size       *int64            `json:"size" yaml:"size"`
}

type Kind struct{}
