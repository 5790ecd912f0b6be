package api

import (
	"context"
	"github.com/containerd/errdefs/pkg/errhttp"
	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/simplecontainer/inventory/pkg/api/middlewares"
	"github.com/simplecontainer/inventory/pkg/configuration"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"github.com/simplecontainer/inventory/pkg/kinds"
	"github.com/simplecontainer/inventory/pkg/kinds/common"
	"github.com/simplecontainer/inventory/pkg/metrics"
	"github.com/simplecontainer/inventory/pkg/static"
	"github.com/simplecontainer/inventory/pkg/version"
	"net/http"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func NewApi(config *configuration.Configuration, runtime iruntime.Client, registry *kinds.Registry, version *version.Version) *Api {
	return &Api{
		Config:   config,
		Runtime:  runtime,
		Registry: registry,
		Version:  version,
	}
}

func (api *Api) Router() *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.Logger())
	router.Use(middlewares.Metrics())
	router.Use(middlewares.CORS())

	router.GET("/healthz", api.Health)
	router.GET("/version", api.GetVersion)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	v1 := router.Group(static.API_PREFIX)
	v1.Use(middlewares.RateLimit(api.Config.RateLimit))
	{
		v1.GET("/kinds", api.ListKinds)
		v1.GET("/:kind", api.List)
		v1.GET("/:kind/*name", api.Describe)
		v1.DELETE("/:kind/*name", api.Delete)
	}

	return router
}

// context bounds a runtime call by the configured timeout.
func (api *Api) context(c *gin.Context) (context.Context, context.CancelFunc) {
	timeout, err := api.Config.Deadline()

	if err != nil {
		return context.WithCancel(c.Request.Context())
	}

	return context.WithTimeout(c.Request.Context(), timeout)
}

func respond(c *gin.Context, status int, explanation string, err error, data interface{}) {
	var bytes []byte

	if data != nil {
		var marshalErr error
		bytes, marshalErr = json.Marshal(data)

		if marshalErr != nil {
			status = http.StatusInternalServerError
			err = marshalErr
			bytes = nil
		}
	}

	c.JSON(status, common.Response(status, explanation, err, bytes))
}

func fail(c *gin.Context, explanation string, err error) {
	respond(c, errhttp.ToHTTP(err), explanation, err, nil)
}
