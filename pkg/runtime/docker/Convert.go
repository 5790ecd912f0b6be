package docker

import (
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/volume"
	"github.com/simplecontainer/inventory/pkg/runtime/raw"
	"k8s.io/utils/ptr"
	"maps"
	"slices"
	"time"
)

// The SDK decodes into plain values, so the adapter cannot tell an empty
// string from a missing one. Strings and booleans are reported as present,
// zero timestamps as missing.

func toNetwork(n network.Summary) raw.Network {
	var containers map[string]raw.NetworkContainer

	if n.Containers != nil {
		containers = make(map[string]raw.NetworkContainer, len(n.Containers))

		for id, endpoint := range n.Containers {
			containers[id] = raw.NetworkContainer{
				Name:        ptr.To(endpoint.Name),
				EndpointID:  ptr.To(endpoint.EndpointID),
				MacAddress:  ptr.To(endpoint.MacAddress),
				IPv4Address: ptr.To(endpoint.IPv4Address),
				IPv6Address: ptr.To(endpoint.IPv6Address),
			}
		}
	}

	return raw.Network{
		ID:         ptr.To(n.ID),
		Name:       ptr.To(n.Name),
		Driver:     ptr.To(n.Driver),
		Created:    timestamp(n.Created),
		Scope:      ptr.To(n.Scope),
		Internal:   ptr.To(n.Internal),
		Attachable: ptr.To(n.Attachable),
		Ingress:    ptr.To(n.Ingress),
		EnableIPv6: ptr.To(n.EnableIPv6),
		Containers: containers,
		Labels:     maps.Clone(n.Labels),
		Options:    maps.Clone(n.Options),
	}
}

func toContainer(c container.Summary) raw.Container {
	var ports []raw.ContainerPort

	if c.Ports != nil {
		ports = make([]raw.ContainerPort, 0, len(c.Ports))

		for _, port := range c.Ports {
			ports = append(ports, raw.ContainerPort{
				IP:          ptr.To(port.IP),
				PrivatePort: ptr.To(port.PrivatePort),
				PublicPort:  ptr.To(port.PublicPort),
				Type:        ptr.To(port.Type),
			})
		}
	}

	var mounts []raw.ContainerMount

	if c.Mounts != nil {
		mounts = make([]raw.ContainerMount, 0, len(c.Mounts))

		for _, mount := range c.Mounts {
			mounts = append(mounts, raw.ContainerMount{
				Type:        ptr.To(string(mount.Type)),
				Name:        ptr.To(mount.Name),
				Source:      ptr.To(mount.Source),
				Destination: ptr.To(mount.Destination),
				RW:          ptr.To(mount.RW),
			})
		}
	}

	var settings *raw.ContainerNetworkSettings

	if c.NetworkSettings != nil {
		settings = &raw.ContainerNetworkSettings{}

		if c.NetworkSettings.Networks != nil {
			settings.Networks = make(map[string]raw.ContainerEndpoint, len(c.NetworkSettings.Networks))

			for name, endpoint := range c.NetworkSettings.Networks {
				if endpoint == nil {
					settings.Networks[name] = raw.ContainerEndpoint{}
					continue
				}

				settings.Networks[name] = raw.ContainerEndpoint{
					NetworkID: ptr.To(endpoint.NetworkID),
					IPAddress: ptr.To(endpoint.IPAddress),
				}
			}
		}
	}

	var created *int64

	if c.Created > 0 {
		created = ptr.To(c.Created)
	}

	return raw.Container{
		ID:              ptr.To(c.ID),
		Names:           slices.Clone(c.Names),
		Image:           ptr.To(c.Image),
		ImageID:         ptr.To(c.ImageID),
		Command:         ptr.To(c.Command),
		Created:         created,
		State:           ptr.To(string(c.State)),
		Status:          ptr.To(c.Status),
		Labels:          maps.Clone(c.Labels),
		Ports:           ports,
		Mounts:          mounts,
		NetworkSettings: settings,
	}
}

func toImage(i image.Summary) raw.Image {
	var created *int64

	if i.Created > 0 {
		created = ptr.To(i.Created)
	}

	return raw.Image{
		ID:          ptr.To(i.ID),
		ParentID:    ptr.To(i.ParentID),
		RepoTags:    slices.Clone(i.RepoTags),
		RepoDigests: slices.Clone(i.RepoDigests),
		Created:     created,
		Size:        ptr.To(i.Size),
		Containers:  ptr.To(i.Containers),
		Labels:      maps.Clone(i.Labels),
	}
}

func toVolume(v volume.Volume) raw.Volume {
	var usage *raw.VolumeUsageData

	if v.UsageData != nil {
		usage = &raw.VolumeUsageData{
			RefCount: ptr.To(v.UsageData.RefCount),
			Size:     ptr.To(v.UsageData.Size),
		}
	}

	var created *string

	if v.CreatedAt != "" {
		created = ptr.To(v.CreatedAt)
	}

	return raw.Volume{
		Name:       ptr.To(v.Name),
		Driver:     ptr.To(v.Driver),
		Mountpoint: ptr.To(v.Mountpoint),
		Scope:      ptr.To(v.Scope),
		CreatedAt:  created,
		Labels:     maps.Clone(v.Labels),
		Options:    maps.Clone(v.Options),
		UsageData:  usage,
	}
}

func timestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}

	return ptr.To(t.UTC().Format(time.RFC3339Nano))
}
