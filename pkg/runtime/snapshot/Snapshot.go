package snapshot

import (
	"context"
	"github.com/containerd/errdefs"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/simplecontainer/inventory/pkg/runtime/raw"
	"io"
	"os"
)

// Snapshot serves resources from a captured engine listing. Objects decode
// into raw types as they are, so fields missing from the file stay missing.
type Snapshot struct {
	Networks   []raw.Network   `json:"networks"`
	Containers []raw.Container `json:"containers"`
	Images     []raw.Image     `json:"images"`
	Volumes    []raw.Volume    `json:"volumes"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Open(path string) (*Snapshot, error) {
	file, err := os.Open(path)

	if err != nil {
		return nil, errors.Wrap(err, "failed to open snapshot")
	}

	defer file.Close()

	return Read(file)
}

func Read(reader io.Reader) (*Snapshot, error) {
	snapshot := &Snapshot{}

	err := json.NewDecoder(reader).Decode(snapshot)

	if err != nil {
		return nil, errors.Wrap(err, "failed to decode snapshot")
	}

	return snapshot, nil
}

func (snapshot *Snapshot) NetworkList(ctx context.Context) ([]raw.Network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return snapshot.Networks, nil
}

func (snapshot *Snapshot) NetworkRemove(ctx context.Context, name string) error {
	return readOnly("network", name)
}

func (snapshot *Snapshot) ContainerList(ctx context.Context) ([]raw.Container, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return snapshot.Containers, nil
}

func (snapshot *Snapshot) ContainerRemove(ctx context.Context, name string) error {
	return readOnly("container", name)
}

func (snapshot *Snapshot) ImageList(ctx context.Context) ([]raw.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return snapshot.Images, nil
}

func (snapshot *Snapshot) ImageRemove(ctx context.Context, name string) error {
	return readOnly("image", name)
}

func (snapshot *Snapshot) VolumeList(ctx context.Context) ([]raw.Volume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return snapshot.Volumes, nil
}

func (snapshot *Snapshot) VolumeRemove(ctx context.Context, name string) error {
	return readOnly("volume", name)
}

func readOnly(kind string, name string) error {
	return errors.Wrapf(errdefs.ErrNotImplemented, "cannot remove %s %s: snapshot is read-only", kind, name)
}

func (snapshot *Snapshot) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (snapshot *Snapshot) Close() error {
	return nil
}
