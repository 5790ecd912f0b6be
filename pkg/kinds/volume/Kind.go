package volume

import (
	"context"
	"github.com/pkg/errors"
	"github.com/simplecontainer/inventory/pkg/contracts/idescribe"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"github.com/simplecontainer/inventory/pkg/describe"
	"github.com/simplecontainer/inventory/pkg/kinds/common"
	"github.com/simplecontainer/inventory/pkg/static"
)

func New() *Kind {
	return &Kind{}
}

func (kind *Kind) GetKind() string {
	return KIND
}

func (kind *Kind) GetAliases() []string {
	return ALIASES
}

func (kind *Kind) Columns() []string {
	return []string{"NAME", "DRIVER", "SCOPE", "SIZE", "CREATED"}
}

func (kind *Kind) Row(object idescribe.Describe) []string {
	volume, ok := object.(Volume)

	if !ok {
		return nil
	}

	return []string{
		volume.Name,
		common.Dash(volume.Driver),
		common.Dash(volume.Scope),
		describe.Size(volume.Size),
		common.Dash(volume.CreatedAt),
	}
}

func (kind *Kind) List(ctx context.Context, client iruntime.Client) ([]idescribe.Describe, error) {
	volumes, err := List(ctx, client)

	if err != nil {
		return nil, err
	}

	return common.Describables(volumes), nil
}

func (kind *Kind) Delete(ctx context.Context, client iruntime.Client, object idescribe.Describe) error {
	volume, ok := object.(Volume)

	if !ok {
		return errors.Errorf("%s: cannot delete object of type %T", static.KIND_VOLUME, object)
	}

	return Delete(ctx, client, volume)
}
