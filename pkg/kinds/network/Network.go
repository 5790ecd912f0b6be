package network

import (
	"context"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"github.com/simplecontainer/inventory/pkg/kinds/common"
	"github.com/simplecontainer/inventory/pkg/runtime/raw"
	"k8s.io/utils/ptr"
	"maps"
)

func FromRaw(object raw.Network) Network {
	network := Network{
		ID:         ptr.Deref(object.ID, ""),
		Name:       ptr.Deref(object.Name, ""),
		Driver:     ptr.Deref(object.Driver, ""),
		CreatedAt:  ptr.Deref(object.Created, ""),
		Scope:      ptr.Deref(object.Scope, ""),
		Internal:   common.Clone(object.Internal),
		Attachable: common.Clone(object.Attachable),
		Ingress:    common.Clone(object.Ingress),
		EnableIPv6: common.Clone(object.EnableIPv6),
		Labels:     maps.Clone(object.Labels),
		Options:    maps.Clone(object.Options),
	}

	if object.Containers != nil {
		network.Containers = make(map[string]Endpoint, len(object.Containers))

		for id, container := range object.Containers {
			network.Containers[id] = Endpoint{
				Name:        ptr.Deref(container.Name, ""),
				EndpointID:  ptr.Deref(container.EndpointID, ""),
				MacAddress:  ptr.Deref(container.MacAddress, ""),
				IPv4Address: ptr.Deref(container.IPv4Address, ""),
				IPv6Address: ptr.Deref(container.IPv6Address, ""),
			}
		}
	}

	return network
}

func List(ctx context.Context, client iruntime.Client) ([]Network, error) {
	networks, err := client.NetworkList(ctx)

	if err != nil {
		return nil, err
	}

	return common.Normalize(networks, FromRaw, Network.GetName), nil
}

// Delete removes the network by name. Previously listed records are not refreshed.
func Delete(ctx context.Context, client iruntime.Client, network Network) error {
	return client.NetworkRemove(ctx, network.GetName())
}
