package container

import (
	"context"
	"github.com/pkg/errors"
	"github.com/simplecontainer/inventory/pkg/contracts/idescribe"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"github.com/simplecontainer/inventory/pkg/kinds/common"
	"github.com/simplecontainer/inventory/pkg/static"
	"strings"
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
	return []string{"NAME", "ID", "IMAGE", "STATE", "STATUS", "NETWORKS", "CREATED"}
}

func (kind *Kind) Row(object idescribe.Describe) []string {
	container, ok := object.(Container)

	if !ok {
		return nil
	}

	return []string{
		container.Name,
		common.ShortID(container.ID),
		common.Dash(container.Image),
		common.Dash(container.State),
		common.Dash(container.Status),
		common.Dash(strings.Join(common.SortedKeys(container.Networks), ", ")),
		common.Dash(container.CreatedAt),
	}
}

func (kind *Kind) List(ctx context.Context, client iruntime.Client) ([]idescribe.Describe, error) {
	containers, err := List(ctx, client)

	if err != nil {
		return nil, err
	}

	return common.Describables(containers), nil
}

func (kind *Kind) Delete(ctx context.Context, client iruntime.Client, object idescribe.Describe) error {
	container, ok := object.(Container)

	if !ok {
		return errors.Errorf("%s: cannot delete object of type %T", static.KIND_CONTAINER, object)
	}

	return Delete(ctx, client, container)
}
