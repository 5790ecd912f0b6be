package api

import (
	"context"
	"errors"
	"fmt"
	"github.com/containerd/errdefs"
	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/simplecontainer/inventory/pkg/configuration"
	"github.com/simplecontainer/inventory/pkg/contracts/iresponse"
	"github.com/simplecontainer/inventory/pkg/kinds"
	mock_iruntime "github.com/simplecontainer/inventory/pkg/runtime/mock"
	"github.com/simplecontainer/inventory/pkg/runtime/raw"
	"github.com/simplecontainer/inventory/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/ptr"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type pingingClient struct {
	*mock_iruntime.MockClient
	err error
}

func (p pingingClient) Ping(ctx context.Context) error {
	return p.err
}

func (p pingingClient) Close() error {
	return nil
}

func newApi(t *testing.T) (*Api, *mock_iruntime.MockClient) {
	ctrl := gomock.NewController(t)
	client := mock_iruntime.NewMockClient(ctrl)

	return NewApi(configuration.NewConfig(), client, kinds.BuildRegistry(), version.New("0.1.0", "")), client
}

func do(t *testing.T, api *Api, method string, path string) (*httptest.ResponseRecorder, iresponse.Response) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, path, nil)

	api.Router().ServeHTTP(recorder, request)

	response := iresponse.Response{}

	if strings.HasPrefix(recorder.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, jsoniter.Unmarshal(recorder.Body.Bytes(), &response))
	}

	return recorder, response
}

func TestListKinds(t *testing.T) {
	api, _ := newApi(t)

	recorder, response := do(t, api, http.MethodGet, "/api/v1/kinds")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, response.Success)

	kinds := make([]KindInfo, 0)
	require.NoError(t, jsoniter.Unmarshal(response.Data, &kinds))

	assert.Len(t, kinds, 4)
	assert.Equal(t, "network", kinds[0].Kind)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}

func TestList(t *testing.T) {
	api, client := newApi(t)

	client.EXPECT().NetworkList(gomock.Any()).Return([]raw.Network{
		{Name: ptr.To("zeta")},
		{Name: ptr.To("alpha")},
	}, nil)

	recorder, response := do(t, api, http.MethodGet, "/api/v1/networks")

	assert.Equal(t, http.StatusOK, recorder.Code)

	records := make([]map[string]interface{}, 0)
	require.NoError(t, jsoniter.Unmarshal(response.Data, &records))

	assert.Equal(t, "alpha", records[0]["name"])
	assert.Equal(t, "zeta", records[1]["name"])
}

func TestListErrors(t *testing.T) {
	testCases := []struct {
		name   string
		path   string
		err    error
		wanted int
	}{
		{"Unknown kind", "/api/v1/pods", nil, http.StatusNotFound},
		{"Runtime unavailable", "/api/v1/volumes", errors.New("Cannot connect to the Docker daemon"), http.StatusInternalServerError},
		{"Runtime not found", "/api/v1/volumes", errdefs.ErrNotFound, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api, client := newApi(t)

			if tc.err != nil {
				client.EXPECT().VolumeList(gomock.Any()).Return(nil, tc.err)
			}

			recorder, response := do(t, api, http.MethodGet, tc.path)

			assert.Equal(t, tc.wanted, recorder.Code)
			assert.True(t, response.Error)
			assert.False(t, response.Success)
		})
	}
}

func TestDescribe(t *testing.T) {
	api, client := newApi(t)

	client.EXPECT().ImageList(gomock.Any()).Return([]raw.Image{
		{ID: ptr.To("sha256:a8758716bb6a"), RepoTags: []string{"library/nginx:1.27"}},
	}, nil)

	recorder, response := do(t, api, http.MethodGet, "/api/v1/image/library/nginx:1.27")

	assert.Equal(t, http.StatusOK, recorder.Code)

	document := struct {
		Kind     string                   `json:"kind"`
		Object   map[string]interface{}   `json:"object"`
		Sections []map[string]interface{} `json:"sections"`
	}{}
	require.NoError(t, jsoniter.Unmarshal(response.Data, &document))

	assert.Equal(t, "image", document.Kind)
	assert.Equal(t, "library/nginx:1.27", document.Object["name"])
	assert.Equal(t, "Summary", document.Sections[0]["title"])
}

func TestDescribeMissing(t *testing.T) {
	api, client := newApi(t)

	client.EXPECT().NetworkList(gomock.Any()).Return([]raw.Network{{Name: ptr.To("bridge")}}, nil)

	recorder, response := do(t, api, http.MethodGet, "/api/v1/network/ghost")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, response.ErrorExplanation, "ghost")
}

func TestDelete(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		wanted int
	}{
		{"Deleted", nil, http.StatusOK},
		{"In use", fmt.Errorf("network frontend has active endpoints: %w", errdefs.ErrConflict), http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api, client := newApi(t)

			client.EXPECT().NetworkList(gomock.Any()).Return([]raw.Network{{Name: ptr.To("frontend")}}, nil)
			client.EXPECT().NetworkRemove(gomock.Any(), "frontend").Return(tc.err)

			recorder, _ := do(t, api, http.MethodDelete, "/api/v1/net/frontend")

			assert.Equal(t, tc.wanted, recorder.Code)
		})
	}
}

func TestDeleteWithoutName(t *testing.T) {
	api, _ := newApi(t)

	recorder, _ := do(t, api, http.MethodDelete, "/api/v1/network/")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHealth(t *testing.T) {
	api, client := newApi(t)

	recorder, _ := do(t, api, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, recorder.Code)

	api.Runtime = pingingClient{MockClient: client, err: errors.New("connection refused")}

	recorder, response := do(t, api, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, response.ErrorExplanation, "connection refused")
}

func TestMetricsEndpoint(t *testing.T) {
	api, _ := newApi(t)

	do(t, api, http.MethodGet, "/api/v1/kinds")
	recorder, _ := do(t, api, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "smrinv_http_requests_total")
}

func TestCORSPreflight(t *testing.T) {
	api, _ := newApi(t)

	recorder, _ := do(t, api, http.MethodOptions, "/api/v1/kinds")

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	api, _ := newApi(t)
	api.Config.RateLimit = 1

	router := api.Router()
	codes := make([]int, 0)

	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/kinds", nil))
		codes = append(codes, recorder.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}
