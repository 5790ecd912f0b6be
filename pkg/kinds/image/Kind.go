package image

import (
	"context"
	"github.com/docker/go-units"
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
	return []string{"NAME", "ID", "SIZE", "CONTAINERS", "CREATED"}
}

func (kind *Kind) Row(object idescribe.Describe) []string {
	image, ok := object.(Image)

	if !ok {
		return nil
	}

	return []string{
		image.Name,
		common.ShortID(image.ID),
		units.HumanSize(float64(image.Size)),
		describe.Int(image.Containers),
		common.Dash(image.CreatedAt),
	}
}

func (kind *Kind) List(ctx context.Context, client iruntime.Client) ([]idescribe.Describe, error) {
	images, err := List(ctx, client)

	if err != nil {
		return nil, err
	}

	return common.Describables(images), nil
}

func (kind *Kind) Delete(ctx context.Context, client iruntime.Client, object idescribe.Describe) error {
	image, ok := object.(Image)

	if !ok {
		return errors.Errorf("%s: cannot delete object of type %T", static.KIND_IMAGE, object)
	}

	return Delete(ctx, client, image)
}
