package iruntime

//go:generate mockgen -source=Runtime.go -destination=../../runtime/mock/Runtime.go -package=mock_iruntime Client

import (
	"context"
	"github.com/simplecontainer/inventory/pkg/runtime/raw"
)

// Client is the boundary towards the container runtime. Remove operations are
// keyed by the identity the kind packages document, which is the name.
type Client interface {
	NetworkList(ctx context.Context) ([]raw.Network, error)
	NetworkRemove(ctx context.Context, name string) error

	ContainerList(ctx context.Context) ([]raw.Container, error)
	ContainerRemove(ctx context.Context, name string) error

	ImageList(ctx context.Context) ([]raw.Image, error)
	ImageRemove(ctx context.Context, name string) error

	VolumeList(ctx context.Context) ([]raw.Volume, error)
	VolumeRemove(ctx context.Context, name string) error
}
