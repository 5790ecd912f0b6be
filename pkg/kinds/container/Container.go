package container

import (
	"context"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"github.com/simplecontainer/inventory/pkg/kinds/common"
	"github.com/simplecontainer/inventory/pkg/runtime/raw"
	"k8s.io/utils/ptr"
	"maps"
	"slices"
	"strings"
)

func FromRaw(object raw.Container) Container {
	container := Container{
		ID:        ptr.Deref(object.ID, ""),
		Names:     slices.Clone(object.Names),
		Image:     ptr.Deref(object.Image, ""),
		ImageID:   ptr.Deref(object.ImageID, ""),
		Command:   ptr.Deref(object.Command, ""),
		CreatedAt: common.Unix(object.Created),
		State:     ptr.Deref(object.State, ""),
		Status:    ptr.Deref(object.Status, ""),
		Labels:    maps.Clone(object.Labels),
	}

	if len(object.Names) > 0 {
		container.Name = strings.TrimPrefix(object.Names[0], "/")
	}

	if object.NetworkSettings != nil && object.NetworkSettings.Networks != nil {
		container.Networks = make(map[string]Network, len(object.NetworkSettings.Networks))

		for name, endpoint := range object.NetworkSettings.Networks {
			container.Networks[name] = Network{
				NetworkID: ptr.Deref(endpoint.NetworkID, ""),
				IPAddress: ptr.Deref(endpoint.IPAddress, ""),
			}
		}
	}

	if object.Mounts != nil {
		container.Mounts = make([]Mount, 0, len(object.Mounts))

		for _, mount := range object.Mounts {
			container.Mounts = append(container.Mounts, Mount{
				Type:        ptr.Deref(mount.Type, ""),
				Name:        ptr.Deref(mount.Name, ""),
				Source:      ptr.Deref(mount.Source, ""),
				Destination: ptr.Deref(mount.Destination, ""),
				ReadWrite:   common.Clone(mount.RW),
			})
		}
	}

	if object.Ports != nil {
		container.Ports = make([]Port, 0, len(object.Ports))

		for _, port := range object.Ports {
			container.Ports = append(container.Ports, Port{
				IP:          ptr.Deref(port.IP, ""),
				PrivatePort: ptr.Deref(port.PrivatePort, 0),
				PublicPort:  ptr.Deref(port.PublicPort, 0),
				Type:        ptr.Deref(port.Type, ""),
			})
		}
	}

	return container
}

func List(ctx context.Context, client iruntime.Client) ([]Container, error) {
	containers, err := client.ContainerList(ctx)

	if err != nil {
		return nil, err
	}

	return common.Normalize(containers, FromRaw, Container.GetName), nil
}

func Delete(ctx context.Context, client iruntime.Client, container Container) error {
	return client.ContainerRemove(ctx, container.GetName())
}
