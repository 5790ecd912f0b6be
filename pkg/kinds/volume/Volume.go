package volume

import (
	"context"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"github.com/simplecontainer/inventory/pkg/kinds/common"
	"github.com/simplecontainer/inventory/pkg/runtime/raw"
	"k8s.io/utils/ptr"
	"maps"
)

func FromRaw(object raw.Volume) Volume {
	volume := Volume{
		ID:         ptr.Deref(object.Name, ""),
		Name:       ptr.Deref(object.Name, ""),
		Driver:     ptr.Deref(object.Driver, ""),
		Mountpoint: ptr.Deref(object.Mountpoint, ""),
		Scope:      ptr.Deref(object.Scope, ""),
		CreatedAt:  ptr.Deref(object.CreatedAt, ""),
		Labels:     maps.Clone(object.Labels),
		Options:    maps.Clone(object.Options),
	}

	if object.UsageData != nil {
		volume.RefCount = common.Known(object.UsageData.RefCount)
		volume.Size = common.Known(object.UsageData.Size)
	}

	return volume
}

func List(ctx context.Context, client iruntime.Client) ([]Volume, error) {
	volumes, err := client.VolumeList(ctx)

	if err != nil {
		return nil, err
	}

	return common.Normalize(volumes, FromRaw, Volume.GetName), nil
}

func Delete(ctx context.Context, client iruntime.Client, volume Volume) error {
	return client.VolumeRemove(ctx, volume.GetName())
}
