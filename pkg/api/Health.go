package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"net/http"
)

func (api *Api) Health(c *gin.Context) {
	if runtime, ok := api.Runtime.(iruntime.Runtime); ok {
		ctx, cancel := api.context(c)
		defer cancel()

		if err := runtime.Ping(ctx); err != nil {
			respond(c, http.StatusServiceUnavailable, "runtime is not reachable", errors.Wrap(err, "ping failed"), nil)
			return
		}
	}

	respond(c, http.StatusOK, "inventory is healthy", nil, nil)
}

func (api *Api) GetVersion(c *gin.Context) {
	respond(c, http.StatusOK, "", nil, api.Version)
}
