// Package web serves the server-rendered pages. Routes follow the
// List/Details/New/Edit/ConfirmDelete/Delete naming of the JSON API.
package web

import (
	"net/http"
	"strconv"

	"imagehost/service"

	"github.com/gin-gonic/gin"
)

// Services bundles the handles the page controllers are built on. Detail
// pages compose several services per view.
type Services struct {
	Uploaders *service.UploaderService
	Projects  *service.ProjectService
	Images    *service.ImageService
	Tags      *service.TagService
}

// Register mounts all page routes on the engine. The engine must have the
// templates loaded already (LoadHTMLGlob).
func Register(r *gin.Engine, svcs Services) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/ProjectPage/List")
	})
	registerUploaderPages(r, svcs)
	registerProjectPages(r, svcs)
	registerImagePages(r, svcs)
	registerTagPages(r, svcs)
}

// pagePathID parses the id route parameter. On failure it renders the
// error view and reports false.
func pagePathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		renderError(c, "invalid id "+raw)
		return 0, false
	}
	return uint(id), true
}

func renderError(c *gin.Context, messages ...string) {
	c.HTML(http.StatusOK, "error.html", gin.H{"Errors": messages})
}

// renderServiceError renders the error view with the service message.
func renderServiceError(c *gin.Context, err error) {
	renderError(c, err.Error())
}
