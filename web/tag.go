package web

import (
	"fmt"
	"net/http"

	"imagehost/model"

	"github.com/gin-gonic/gin"
)

// tagDetails drives the tag detail page: the tag plus its associated
// projects.
type tagDetails struct {
	Tag      model.TagDto
	Projects []model.ProjectDto
}

type tagForm struct {
	Name  string `form:"tagName"`
	Color string `form:"tagColor"`
}

func registerTagPages(r *gin.Engine, svcs Services) {
	h := tagPages{svcs: svcs}
	r.GET("/TagPage/List", h.list)
	r.GET("/TagPage/Details/:id", h.details)
	r.GET("/TagPage/New", h.newForm)
	r.POST("/TagPage/Add", h.add)
	r.GET("/TagPage/Edit/:id", h.edit)
	r.POST("/TagPage/Update/:id", h.update)
	r.GET("/TagPage/ConfirmDelete/:id", h.confirmDelete)
	r.POST("/TagPage/Delete/:id", h.remove)
}

type tagPages struct {
	svcs Services
}

func (h tagPages) list(c *gin.Context) {
	tags, err := h.svcs.Tags.List(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "tag_list.html", gin.H{"Tags": tags})
}

func (h tagPages) details(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	tag, err := h.svcs.Tags.Find(ctx, id)
	if err != nil {
		renderError(c, "Could not find Tag")
		return
	}
	projects, err := h.svcs.Tags.ListProjectsForTag(ctx, id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "tag_details.html", tagDetails{
		Tag:      tag,
		Projects: projects,
	})
}

func (h tagPages) newForm(c *gin.Context) {
	c.HTML(http.StatusOK, "tag_new.html", nil)
}

func (h tagPages) add(c *gin.Context) {
	var form tagForm
	if err := c.ShouldBind(&form); err != nil {
		renderServiceError(c, err)
		return
	}
	id, err := h.svcs.Tags.Add(c.Request.Context(), model.TagDto{
		Name:  form.Name,
		Color: form.Color,
	})
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/TagPage/Details/%d", id))
}

func (h tagPages) edit(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	tag, err := h.svcs.Tags.Find(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "tag_edit.html", gin.H{"Tag": tag})
}

func (h tagPages) update(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	var form tagForm
	if err := c.ShouldBind(&form); err != nil {
		renderServiceError(c, err)
		return
	}
	err := h.svcs.Tags.Update(c.Request.Context(), model.TagDto{
		TagID: id,
		Name:  form.Name,
		Color: form.Color,
	})
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/TagPage/Details/%d", id))
}

func (h tagPages) confirmDelete(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	tag, err := h.svcs.Tags.Find(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "tag_confirm_delete.html", gin.H{"Tag": tag})
}

func (h tagPages) remove(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	if err := h.svcs.Tags.Delete(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/TagPage/List")
}
