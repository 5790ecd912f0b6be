package ikinds

import (
	"context"
	"github.com/simplecontainer/inventory/pkg/contracts/idescribe"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
)

type Kind interface {
	GetKind() string
	GetAliases() []string
	Columns() []string
	Row(idescribe.Describe) []string
	List(context.Context, iruntime.Client) ([]idescribe.Describe, error)
	Delete(context.Context, iruntime.Client, idescribe.Describe) error
}
