package kinds

import (
	"context"
	"errors"
	"github.com/containerd/errdefs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/simplecontainer/inventory/pkg/kinds/network"
	"github.com/simplecontainer/inventory/pkg/metrics"
	mock_iruntime "github.com/simplecontainer/inventory/pkg/runtime/mock"
	"github.com/simplecontainer/inventory/pkg/runtime/raw"
	"github.com/simplecontainer/inventory/pkg/static"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/ptr"
	"testing"
)

func TestGet(t *testing.T) {
	registry := BuildRegistry()

	testCases := []struct {
		name   string
		input  string
		wanted string
		err    bool
	}{
		{"Kind name", "network", static.KIND_NETWORK, false},
		{"Plural alias", "volumes", static.KIND_VOLUME, false},
		{"Short alias", "ps", static.KIND_CONTAINER, false},
		{"Case and spaces", " Images ", static.KIND_IMAGE, false},
		{"Unknown", "pods", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := registry.Get(tc.input)

			if tc.err {
				assert.True(t, errdefs.IsNotFound(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wanted, kind.GetKind())
		})
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"network", "container", "image", "volume"}, BuildRegistry().Names())
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New("pod")

	assert.True(t, errdefs.IsNotFound(err))
}

func TestListRecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)

	client.EXPECT().NetworkList(gomock.Any()).Return([]raw.Network{{Name: ptr.To("b")}, {Name: ptr.To("a")}}, nil)

	before := testutil.ToFloat64(metrics.RuntimeCalls.Get().WithLabelValues(static.KIND_NETWORK, static.OPERATION_LIST, metrics.RESULT_SUCCESS))

	kind, objects, err := BuildRegistry().List(context.Background(), client, "networks")

	require.NoError(t, err)
	assert.Equal(t, static.KIND_NETWORK, kind.GetKind())
	assert.Equal(t, "a", objects[0].GetName())
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.RuntimeCalls.Get().WithLabelValues(static.KIND_NETWORK, static.OPERATION_LIST, metrics.RESULT_SUCCESS)))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.Resources.Get().WithLabelValues(static.KIND_NETWORK)))
}

func TestListPassesRuntimeErrorThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)

	unavailable := errors.New("Cannot connect to the Docker daemon")
	client.EXPECT().VolumeList(gomock.Any()).Return(nil, unavailable)

	_, objects, err := BuildRegistry().List(context.Background(), client, "volume")

	assert.Same(t, unavailable, err)
	assert.Nil(t, objects)
}

func TestFind(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)

	client.EXPECT().NetworkList(gomock.Any()).Return([]raw.Network{{Name: ptr.To("bridge")}, {Name: ptr.To("host")}}, nil).Times(2)

	registry := BuildRegistry()

	_, object, err := registry.Find(context.Background(), client, "network", "host")

	require.NoError(t, err)
	assert.Equal(t, "host", object.GetName())
	assert.IsType(t, network.Network{}, object)

	_, object, err = registry.Find(context.Background(), client, "network", "ghost")

	assert.Nil(t, object)
	assert.True(t, errdefs.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)

	notFound := errdefs.ErrNotFound
	client.EXPECT().NetworkRemove(gomock.Any(), "ghost").Return(notFound)

	registry := BuildRegistry()
	kind, err := registry.Get("network")
	require.NoError(t, err)

	err = registry.Delete(context.Background(), client, kind, network.Network{Name: "ghost"})

	assert.Equal(t, notFound, err)
}

func TestFindAndDeleteImageByAnyTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)

	client.EXPECT().ImageList(gomock.Any()).Return([]raw.Image{
		{ID: ptr.To("sha256:aa"), RepoTags: []string{"nginx:latest", "nginx:1.27"}},
		{ID: ptr.To("sha256:bb"), RepoTags: []string{"redis:7"}},
	}, nil)
	client.EXPECT().ImageRemove(gomock.Any(), "sha256:aa").Return(nil)

	registry := BuildRegistry()

	kind, object, err := registry.Find(context.Background(), client, "image", "nginx:1.27")

	require.NoError(t, err)
	assert.Equal(t, "nginx:latest", object.GetName())

	assert.NoError(t, registry.Delete(context.Background(), client, kind, object))
}
