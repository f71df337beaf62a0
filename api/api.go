// Package api exposes the domain services as JSON HTTP endpoints.
package api

import (
	"strconv"

	"imagehost/response"
	"imagehost/service"

	"github.com/gin-gonic/gin"
)

// Services bundles the handles the API controllers are built on.
type Services struct {
	Uploaders *service.UploaderService
	Projects  *service.ProjectService
	Images    *service.ImageService
	Tags      *service.TagService
}

// Register mounts all entity endpoints under the given group
// (conventionally /api).
func Register(g *gin.RouterGroup, svcs Services) {
	RegisterUploader(g, svcs.Uploaders)
	RegisterProject(g, svcs.Projects)
	RegisterImage(g, svcs.Images)
	RegisterTag(g, svcs.Tags)
}

// pathID parses the named route parameter as an entity id. On failure it
// writes a 400 response and reports false.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.BadRequestError(c, "invalid id "+raw)
		return 0, false
	}
	return uint(id), true
}
