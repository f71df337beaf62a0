package web

import (
	"fmt"
	"net/http"

	"imagehost/model"

	"github.com/gin-gonic/gin"
)

// projectDetails drives the project detail page: the project itself, its
// images and tags, plus all tags for the link form.
type projectDetails struct {
	Project model.ProjectDto
	Images  []model.ImageDto
	Tags    []model.TagDto
	AllTags []model.TagDto
}

type projectForm struct {
	Name        string `form:"projectName"`
	Description string `form:"projectDescription"`
	UploaderID  uint   `form:"uploaderId"`
}

func registerProjectPages(r *gin.Engine, svcs Services) {
	h := projectPages{svcs: svcs}
	r.GET("/ProjectPage/List", h.list)
	r.GET("/ProjectPage/Details/:id", h.details)
	r.GET("/ProjectPage/New", h.newForm)
	r.POST("/ProjectPage/Add", h.add)
	r.GET("/ProjectPage/Edit/:id", h.edit)
	r.POST("/ProjectPage/Update/:id", h.update)
	r.GET("/ProjectPage/ConfirmDelete/:id", h.confirmDelete)
	r.POST("/ProjectPage/Delete/:id", h.remove)
	r.POST("/ProjectPage/LinkToTag", h.linkToTag)
	r.POST("/ProjectPage/UnlinkFromTag", h.unlinkFromTag)
}

type projectPages struct {
	svcs Services
}

func (h projectPages) list(c *gin.Context) {
	projects, err := h.svcs.Projects.List(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "project_list.html", gin.H{"Projects": projects})
}

func (h projectPages) details(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	project, err := h.svcs.Projects.Find(ctx, id)
	if err != nil {
		renderError(c, "Could not find Project")
		return
	}
	images, err := h.svcs.Images.ListImagesForProject(ctx, id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	tags, err := h.svcs.Projects.ListTagsForProject(ctx, id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	allTags, err := h.svcs.Tags.List(ctx)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "project_details.html", projectDetails{
		Project: project,
		Images:  images,
		Tags:    tags,
		AllTags: allTags,
	})
}

func (h projectPages) newForm(c *gin.Context) {
	uploaders, err := h.svcs.Uploaders.List(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "project_new.html", gin.H{"Uploaders": uploaders})
}

func (h projectPages) add(c *gin.Context) {
	var form projectForm
	if err := c.ShouldBind(&form); err != nil {
		renderServiceError(c, err)
		return
	}
	id, err := h.svcs.Projects.Add(c.Request.Context(), model.ProjectDto{
		Name:        form.Name,
		Description: form.Description,
		UploaderID:  form.UploaderID,
	})
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/ProjectPage/Details/%d", id))
}

func (h projectPages) edit(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	project, err := h.svcs.Projects.Find(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "project_edit.html", gin.H{"Project": project})
}

func (h projectPages) update(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	var form projectForm
	if err := c.ShouldBind(&form); err != nil {
		renderServiceError(c, err)
		return
	}
	err := h.svcs.Projects.Update(c.Request.Context(), model.ProjectDto{
		ProjectID:   id,
		Name:        form.Name,
		Description: form.Description,
	})
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/ProjectPage/Details/%d", id))
}

func (h projectPages) confirmDelete(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	project, err := h.svcs.Projects.Find(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "project_confirm_delete.html", gin.H{"Project": project})
}

func (h projectPages) remove(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	if err := h.svcs.Projects.Delete(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/ProjectPage/List")
}

type tagLinkForm struct {
	ProjectID uint `form:"projectId"`
	TagID     uint `form:"tagId"`
}

func (h projectPages) linkToTag(c *gin.Context) {
	var form tagLinkForm
	if err := c.ShouldBind(&form); err != nil {
		renderServiceError(c, err)
		return
	}
	if err := h.svcs.Projects.LinkTagToProject(c.Request.Context(), form.TagID, form.ProjectID); err != nil {
		renderServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/ProjectPage/Details/%d", form.ProjectID))
}

func (h projectPages) unlinkFromTag(c *gin.Context) {
	var form tagLinkForm
	if err := c.ShouldBind(&form); err != nil {
		renderServiceError(c, err)
		return
	}
	if err := h.svcs.Projects.UnlinkTagFromProject(c.Request.Context(), form.TagID, form.ProjectID); err != nil {
		renderServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/ProjectPage/Details/%d", form.ProjectID))
}
