package network

import (
	"context"
	"github.com/pkg/errors"
	"github.com/simplecontainer/inventory/pkg/contracts/idescribe"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"github.com/simplecontainer/inventory/pkg/kinds/common"
	"github.com/simplecontainer/inventory/pkg/static"
	"strconv"
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
	return []string{"NAME", "ID", "DRIVER", "SCOPE", "CONTAINERS", "CREATED"}
}

func (kind *Kind) Row(object idescribe.Describe) []string {
	network, ok := object.(Network)

	if !ok {
		return nil
	}

	return []string{
		network.Name,
		common.ShortID(network.ID),
		common.Dash(network.Driver),
		common.Dash(network.Scope),
		strconv.Itoa(len(network.Containers)),
		common.Dash(network.CreatedAt),
	}
}

func (kind *Kind) List(ctx context.Context, client iruntime.Client) ([]idescribe.Describe, error) {
	networks, err := List(ctx, client)

	if err != nil {
		return nil, err
	}

	return common.Describables(networks), nil
}

func (kind *Kind) Delete(ctx context.Context, client iruntime.Client, object idescribe.Describe) error {
	network, ok := object.(Network)

	if !ok {
		return errors.Errorf("%s: cannot delete object of type %T", static.KIND_NETWORK, object)
	}

	return Delete(ctx, client, network)
}
