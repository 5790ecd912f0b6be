package api

import (
	"github.com/gin-gonic/gin"
	"github.com/simplecontainer/inventory/pkg/formaters"
	"net/http"
	"strings"
)

func (api *Api) ListKinds(c *gin.Context) {
	kinds := make([]KindInfo, 0)

	for _, name := range api.Registry.Names() {
		kind, err := api.Registry.Get(name)

		if err != nil {
			fail(c, "", err)
			return
		}

		kinds = append(kinds, KindInfo{
			Kind:    kind.GetKind(),
			Aliases: kind.GetAliases(),
			Columns: kind.Columns(),
		})
	}

	respond(c, http.StatusOK, "", nil, kinds)
}

func (api *Api) List(c *gin.Context) {
	ctx, cancel := api.context(c)
	defer cancel()

	_, objects, err := api.Registry.List(ctx, api.Runtime, c.Param("kind"))

	if err != nil {
		fail(c, "failed to list resources", err)
		return
	}

	respond(c, http.StatusOK, "", nil, objects)
}

func (api *Api) Describe(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")

	if name == "" {
		respond(c, http.StatusBadRequest, "resource name is required", nil, nil)
		return
	}

	ctx, cancel := api.context(c)
	defer cancel()

	kind, object, err := api.Registry.Find(ctx, api.Runtime, c.Param("kind"), name)

	if err != nil {
		fail(c, "failed to describe resource", err)
		return
	}

	respond(c, http.StatusOK, "", nil, formaters.Document{
		Kind:     kind.GetKind(),
		Object:   object,
		Sections: object.Describe(),
	})
}

func (api *Api) Delete(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("name"), "/")

	if name == "" {
		respond(c, http.StatusBadRequest, "resource name is required", nil, nil)
		return
	}

	ctx, cancel := api.context(c)
	defer cancel()

	kind, object, err := api.Registry.Find(ctx, api.Runtime, c.Param("kind"), name)

	if err != nil {
		fail(c, "failed to delete resource", err)
		return
	}

	err = api.Registry.Delete(ctx, api.Runtime, kind, object)

	if err != nil {
		fail(c, "failed to delete resource", err)
		return
	}

	respond(c, http.StatusOK, kind.GetKind()+" "+object.GetName()+" deleted", nil, nil)
}
