package kinds

import (
	"context"
	"github.com/containerd/errdefs"
	"github.com/pkg/errors"
	"github.com/simplecontainer/inventory/pkg/contracts/idescribe"
	"github.com/simplecontainer/inventory/pkg/contracts/ikinds"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"github.com/simplecontainer/inventory/pkg/kinds/container"
	"github.com/simplecontainer/inventory/pkg/kinds/image"
	"github.com/simplecontainer/inventory/pkg/kinds/network"
	"github.com/simplecontainer/inventory/pkg/kinds/volume"
	"github.com/simplecontainer/inventory/pkg/logger"
	"github.com/simplecontainer/inventory/pkg/metrics"
	"github.com/simplecontainer/inventory/pkg/static"
	"go.uber.org/zap"
	"strings"
	"time"
)

func New(kind string) (ikinds.Kind, error) {
	switch kind {
	case static.KIND_NETWORK:
		return network.New(), nil
	case static.KIND_CONTAINER:
		return container.New(), nil
	case static.KIND_IMAGE:
		return image.New(), nil
	case static.KIND_VOLUME:
		return volume.New(), nil
	default:
		return nil, errors.Wrapf(errdefs.ErrNotFound, "%s kind does not exist", kind)
	}
}

func BuildRegistry() *Registry {
	registry := NewRegistry()

	for _, name := range []string{static.KIND_NETWORK, static.KIND_CONTAINER, static.KIND_IMAGE, static.KIND_VOLUME} {
		kind, err := New(name)

		if err != nil {
			panic(err)
		}

		registry.Register(kind)
	}

	return registry
}

func NewRegistry() *Registry {
	return &Registry{
		Kinds:   make(map[string]ikinds.Kind),
		Aliases: make(map[string]string),
		Order:   make([]string, 0),
	}
}

func (registry *Registry) Register(kind ikinds.Kind) {
	if _, ok := registry.Kinds[kind.GetKind()]; !ok {
		registry.Order = append(registry.Order, kind.GetKind())
	}

	registry.Kinds[kind.GetKind()] = kind

	for _, alias := range kind.GetAliases() {
		registry.Aliases[alias] = kind.GetKind()
	}
}

// Get resolves a kind by name or alias, case-insensitively.
func (registry *Registry) Get(name string) (ikinds.Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if alias, ok := registry.Aliases[name]; ok {
		name = alias
	}

	kind, ok := registry.Kinds[name]

	if !ok {
		return nil, errors.Wrapf(errdefs.ErrNotFound, "%s kind does not exist", name)
	}

	return kind, nil
}

func (registry *Registry) Names() []string {
	return append([]string{}, registry.Order...)
}

// List returns the records of a kind. Runtime errors are returned as they are.
func (registry *Registry) List(ctx context.Context, client iruntime.Client, name string) (ikinds.Kind, []idescribe.Describe, error) {
	kind, err := registry.Get(name)

	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	objects, err := kind.List(ctx, client)

	metrics.RuntimeLatency.Observe(time.Since(start).Seconds(), kind.GetKind(), static.OPERATION_LIST)
	metrics.RuntimeCalls.Increment(kind.GetKind(), static.OPERATION_LIST, metrics.Result(err))

	if err != nil {
		logger.Log.Debug("list failed", zap.String("kind", kind.GetKind()), zap.Error(err))
		return kind, nil, err
	}

	metrics.Resources.Set(float64(len(objects)), kind.GetKind())
	logger.Log.Debug("listed resources", zap.String("kind", kind.GetKind()), zap.Int("count", len(objects)))

	return kind, objects, nil
}

// Find lists the kind and picks the record with the given name, falling
// back to records that match it some other way.
func (registry *Registry) Find(ctx context.Context, client iruntime.Client, name string, objectName string) (ikinds.Kind, idescribe.Describe, error) {
	kind, objects, err := registry.List(ctx, client, name)

	if err != nil {
		return kind, nil, err
	}

	for _, object := range objects {
		if object.GetName() == objectName {
			return kind, object, nil
		}
	}

	for _, object := range objects {
		if matcher, ok := object.(idescribe.Matcher); ok && matcher.Matches(objectName) {
			return kind, object, nil
		}
	}

	return kind, nil, errors.Wrapf(errdefs.ErrNotFound, "%s %s not found", kind.GetKind(), objectName)
}

func (registry *Registry) Delete(ctx context.Context, client iruntime.Client, kind ikinds.Kind, object idescribe.Describe) error {
	start := time.Now()
	err := kind.Delete(ctx, client, object)

	metrics.RuntimeLatency.Observe(time.Since(start).Seconds(), kind.GetKind(), static.OPERATION_DELETE)
	metrics.RuntimeCalls.Increment(kind.GetKind(), static.OPERATION_DELETE, metrics.Result(err))

	if err != nil {
		logger.Log.Debug("delete failed", zap.String("kind", kind.GetKind()), zap.String("name", object.GetName()), zap.Error(err))
		return err
	}

	logger.Log.Debug("deleted resource", zap.String("kind", kind.GetKind()), zap.String("name", object.GetName()))

	return nil
}
