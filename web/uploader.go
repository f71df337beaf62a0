package web

import (
	"fmt"
	"net/http"

	"imagehost/model"

	"github.com/gin-gonic/gin"
)

// uploaderDetails drives the uploader detail page: the account plus the
// projects it owns.
type uploaderDetails struct {
	Uploader model.UploaderDto
	Projects []model.ProjectDto
}

type uploaderForm struct {
	Name  string `form:"uploaderName"`
	Email string `form:"uploaderEmail"`
}

func registerUploaderPages(r *gin.Engine, svcs Services) {
	h := uploaderPages{svcs: svcs}
	r.GET("/UploaderPage/List", h.list)
	r.GET("/UploaderPage/Details/:id", h.details)
	r.GET("/UploaderPage/New", h.newForm)
	r.POST("/UploaderPage/Add", h.add)
	r.GET("/UploaderPage/Edit/:id", h.edit)
	r.POST("/UploaderPage/Update/:id", h.update)
	r.GET("/UploaderPage/ConfirmDelete/:id", h.confirmDelete)
	r.POST("/UploaderPage/Delete/:id", h.remove)
}

type uploaderPages struct {
	svcs Services
}

func (h uploaderPages) list(c *gin.Context) {
	uploaders, err := h.svcs.Uploaders.List(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "uploader_list.html", gin.H{"Uploaders": uploaders})
}

func (h uploaderPages) details(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	uploader, err := h.svcs.Uploaders.Find(ctx, id)
	if err != nil {
		renderError(c, "Could not find Uploader")
		return
	}
	projects, err := h.svcs.Projects.ListProjectsForUploader(ctx, id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "uploader_details.html", uploaderDetails{
		Uploader: uploader,
		Projects: projects,
	})
}

func (h uploaderPages) newForm(c *gin.Context) {
	c.HTML(http.StatusOK, "uploader_new.html", nil)
}

func (h uploaderPages) add(c *gin.Context) {
	var form uploaderForm
	if err := c.ShouldBind(&form); err != nil {
		renderServiceError(c, err)
		return
	}
	id, err := h.svcs.Uploaders.Add(c.Request.Context(), model.UploaderDto{
		Name:  form.Name,
		Email: form.Email,
	})
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/UploaderPage/Details/%d", id))
}

func (h uploaderPages) edit(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	uploader, err := h.svcs.Uploaders.Find(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "uploader_edit.html", gin.H{"Uploader": uploader})
}

func (h uploaderPages) update(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	var form uploaderForm
	if err := c.ShouldBind(&form); err != nil {
		renderServiceError(c, err)
		return
	}
	err := h.svcs.Uploaders.Update(c.Request.Context(), model.UploaderDto{
		UploaderID: id,
		Name:       form.Name,
		Email:      form.Email,
	})
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/UploaderPage/Details/%d", id))
}

func (h uploaderPages) confirmDelete(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	uploader, err := h.svcs.Uploaders.Find(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "uploader_confirm_delete.html", gin.H{"Uploader": uploader})
}

func (h uploaderPages) remove(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	if err := h.svcs.Uploaders.Delete(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/UploaderPage/List")
}
