package network

import (
	"context"
	"errors"
	"fmt"
	"github.com/containerd/errdefs"
	"github.com/simplecontainer/inventory/pkg/describe"
	mock_iruntime "github.com/simplecontainer/inventory/pkg/runtime/mock"
	"github.com/simplecontainer/inventory/pkg/runtime/raw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/ptr"
	"testing"
)

func summaryValue(t *testing.T, network Network, label string) string {
	t.Helper()

	summary := describe.Find(network.Describe(), describe.SUMMARY)
	require.NotNil(t, summary)

	value, ok := summary.Get(label)
	require.True(t, ok, "missing summary item %s", label)

	return value
}

func TestFromRaw(t *testing.T) {
	type Wanted struct {
		network Network
	}

	testCases := []struct {
		name   string
		raw    raw.Network
		wanted Wanted
	}{
		{
			"Nothing reported",
			raw.Network{},
			Wanted{
				network: Network{},
			},
		},
		{
			"Bridge without optionals",
			raw.Network{
				ID:      ptr.To("abc123"),
				Name:    ptr.To("bridge"),
				Driver:  ptr.To("bridge"),
				Created: ptr.To("2024-01-01T00:00:00Z"),
				Scope:   ptr.To("local"),
			},
			Wanted{
				network: Network{
					ID:        "abc123",
					Name:      "bridge",
					Driver:    "bridge",
					CreatedAt: "2024-01-01T00:00:00Z",
					Scope:     "local",
				},
			},
		},
		{
			"Optionals reported as false",
			raw.Network{
				Name:       ptr.To("backend"),
				Internal:   ptr.To(false),
				Attachable: ptr.To(false),
				Containers: map[string]raw.NetworkContainer{},
			},
			Wanted{
				network: Network{
					Name:       "backend",
					Internal:   ptr.To(false),
					Attachable: ptr.To(false),
					Containers: map[string]Endpoint{},
				},
			},
		},
		{
			"Sparse attached container",
			raw.Network{
				Name: ptr.To("backend"),
				Containers: map[string]raw.NetworkContainer{
					"c1": {Name: ptr.To("web"), IPv4Address: ptr.To("172.18.0.2/16")},
					"c2": {},
				},
			},
			Wanted{
				network: Network{
					Name: "backend",
					Containers: map[string]Endpoint{
						"c1": {Name: "web", IPv4Address: "172.18.0.2/16"},
						"c2": {},
					},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			network := FromRaw(tc.raw)

			assert.Equal(t, tc.wanted.network, network)
			assert.Equal(t, network.GetName(), network.GetID())
		})
	}
}

func TestFromRawKeepsUnknownDistinctFromEmpty(t *testing.T) {
	absent := FromRaw(raw.Network{})
	empty := FromRaw(raw.Network{Containers: map[string]raw.NetworkContainer{}})

	assert.Nil(t, absent.Containers)
	assert.NotNil(t, empty.Containers)
	assert.Nil(t, absent.Internal)
}

func TestFromRawDoesNotShareMemory(t *testing.T) {
	internal := true
	labels := map[string]string{"a": "b"}

	network := FromRaw(raw.Network{Internal: &internal, Labels: labels})

	internal = false
	labels["a"] = "changed"

	assert.True(t, *network.Internal)
	assert.Equal(t, "b", network.Labels["a"])
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		name       string
		raw        raw.Network
		internal   string
		attachable string
		containers string
	}{
		{"Absent optionals", raw.Network{}, "N/A", "N/A", "0"},
		{"Reported false", raw.Network{Internal: ptr.To(false), Attachable: ptr.To(false)}, "false", "false", "0"},
		{"Reported true", raw.Network{Internal: ptr.To(true), Attachable: ptr.To(true)}, "true", "true", "0"},
		{"Empty containers", raw.Network{Containers: map[string]raw.NetworkContainer{}}, "N/A", "N/A", "0"},
		{
			"Three containers",
			raw.Network{Containers: map[string]raw.NetworkContainer{"a": {}, "b": {}, "c": {}}},
			"N/A", "N/A", "3",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			network := FromRaw(tc.raw)

			assert.Equal(t, tc.internal, summaryValue(t, network, "Internal"))
			assert.Equal(t, tc.attachable, summaryValue(t, network, "Attachable"))
			assert.Equal(t, tc.containers, summaryValue(t, network, "Containers"))
		})
	}
}

func TestDescribeBridgeScenario(t *testing.T) {
	network := FromRaw(raw.Network{
		ID:      ptr.To("abc123"),
		Name:    ptr.To("bridge"),
		Driver:  ptr.To("bridge"),
		Created: ptr.To("2024-01-01T00:00:00Z"),
		Scope:   ptr.To("local"),
	})

	sections := network.Describe()

	require.Len(t, sections, 1)
	assert.Equal(t, describe.SUMMARY, sections[0].Title)
	assert.Equal(t, []describe.Item{
		{Label: "ID", Value: "abc123"},
		{Label: "Name", Value: "bridge"},
		{Label: "Driver", Value: "bridge"},
		{Label: "Created At", Value: "2024-01-01T00:00:00Z"},
		{Label: "Scope", Value: "local"},
		{Label: "Internal", Value: "N/A"},
		{Label: "Attachable", Value: "N/A"},
		{Label: "Containers", Value: "0"},
	}, sections[0].Items)
}

func TestDescribeExtraSections(t *testing.T) {
	network := FromRaw(raw.Network{
		Name: ptr.To("backend"),
		Containers: map[string]raw.NetworkContainer{
			"0123456789abcdef": {Name: ptr.To("web"), IPv4Address: ptr.To("172.18.0.2/16")},
		},
		Labels:  map[string]string{"team": "core"},
		Options: map[string]string{"com.docker.network.driver.mtu": "1500"},
	})

	sections := network.Describe()

	require.Len(t, sections, 4)
	assert.Equal(t, describe.SUMMARY, sections[0].Title)

	containers := describe.Find(sections, "Containers")
	require.NotNil(t, containers)
	assert.Equal(t, []describe.Item{{Label: "web", Value: "172.18.0.2/16 (0123456789ab)"}}, containers.Items)

	labels := describe.Find(sections, "Labels")
	require.NotNil(t, labels)
	assert.Equal(t, []describe.Item{{Label: "team", Value: "core"}}, labels.Items)

	assert.NotNil(t, describe.Find(sections, "Options"))
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)

	client.EXPECT().NetworkList(gomock.Any()).Return([]raw.Network{
		{Name: ptr.To("zeta")},
		{Name: ptr.To("alpha")},
		{ID: ptr.To("no-name")},
	}, nil)

	networks, err := List(context.Background(), client)

	require.NoError(t, err)
	require.Len(t, networks, 3)
	assert.Equal(t, "", networks[0].Name)
	assert.Equal(t, "no-name", networks[0].ID)
	assert.Equal(t, "alpha", networks[1].Name)
	assert.Equal(t, "zeta", networks[2].Name)
}

func TestListEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)

	client.EXPECT().NetworkList(gomock.Any()).Return(nil, nil)

	networks, err := List(context.Background(), client)

	require.NoError(t, err)
	assert.Empty(t, networks)
}

func TestListPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)

	transport := errors.New("dial unix /var/run/docker.sock: connect: connection refused")
	client.EXPECT().NetworkList(gomock.Any()).Return([]raw.Network{{Name: ptr.To("partial")}}, transport)

	networks, err := List(context.Background(), client)

	assert.Same(t, transport, err)
	assert.Nil(t, networks)
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)

	client.EXPECT().NetworkRemove(gomock.Any(), "backend").Return(nil)

	err := Delete(context.Background(), client, Network{ID: "f00d", Name: "backend"})

	assert.NoError(t, err)
}

func TestDeletePropagatesNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)

	notFound := fmt.Errorf("network ghost: %w", errdefs.ErrNotFound)
	client.EXPECT().NetworkRemove(gomock.Any(), "ghost").Return(notFound)

	err := Delete(context.Background(), client, Network{Name: "ghost"})

	assert.Equal(t, notFound, err)
	assert.True(t, errdefs.IsNotFound(err))
}

func TestKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)
	kind := New()

	client.EXPECT().NetworkList(gomock.Any()).Return([]raw.Network{{Name: ptr.To("b")}, {Name: ptr.To("a")}}, nil)
	client.EXPECT().NetworkRemove(gomock.Any(), "a").Return(nil)

	objects, err := kind.List(context.Background(), client)

	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "a", objects[0].GetName())
	assert.Len(t, kind.Row(objects[0]), len(kind.Columns()))

	assert.NoError(t, kind.Delete(context.Background(), client, objects[0]))
}

type foreign struct{}

func (foreign) GetID() string                { return "x" }
func (foreign) GetName() string              { return "x" }
func (foreign) Describe() []describe.Section { return nil }

func TestKindRejectsForeignObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)

	err := New().Delete(context.Background(), client, foreign{})

	assert.Error(t, err)
	assert.Nil(t, New().Row(foreign{}))
}
