package web

import (
	"fmt"
	"net/http"

	"imagehost/model"

	"github.com/gin-gonic/gin"
)

// imageDetails drives the image detail page: the image plus the project
// it belongs to.
type imageDetails struct {
	Image   model.ImageDto
	Project model.ProjectDto
}

type imageForm struct {
	FileName  string `form:"fileName"`
	ProjectID uint   `form:"projectId"`
}

func registerImagePages(r *gin.Engine, svcs Services) {
	h := imagePages{svcs: svcs}
	r.GET("/ImagePage/List", h.list)
	r.GET("/ImagePage/Details/:id", h.details)
	r.GET("/ImagePage/New", h.newForm)
	r.POST("/ImagePage/Add", h.add)
	r.GET("/ImagePage/Edit/:id", h.edit)
	r.POST("/ImagePage/Update/:id", h.update)
	r.GET("/ImagePage/ConfirmDelete/:id", h.confirmDelete)
	r.POST("/ImagePage/Delete/:id", h.remove)
}

type imagePages struct {
	svcs Services
}

func (h imagePages) list(c *gin.Context) {
	images, err := h.svcs.Images.List(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "image_list.html", gin.H{"Images": images})
}

func (h imagePages) details(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	image, err := h.svcs.Images.Find(ctx, id)
	if err != nil {
		renderError(c, "Could not find Image")
		return
	}
	project, err := h.svcs.Projects.Find(ctx, image.ProjectID)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "image_details.html", imageDetails{
		Image:   image,
		Project: project,
	})
}

func (h imagePages) newForm(c *gin.Context) {
	projects, err := h.svcs.Projects.List(c.Request.Context())
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "image_new.html", gin.H{"Projects": projects})
}

// add creates the metadata row and, when a file was attached to the form,
// immediately uploads it for the new row.
func (h imagePages) add(c *gin.Context) {
	var form imageForm
	if err := c.ShouldBind(&form); err != nil {
		renderServiceError(c, err)
		return
	}
	ctx := c.Request.Context()
	id, err := h.svcs.Images.Add(ctx, model.ImageDto{
		FileName:  form.FileName,
		ProjectID: form.ProjectID,
	})
	if err != nil {
		renderServiceError(c, err)
		return
	}
	if upload, ferr := c.FormFile("ImageFile"); ferr == nil && upload != nil {
		if err := h.svcs.Images.UploadImageFile(ctx, id, upload); err != nil {
			renderServiceError(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/ImagePage/Details/%d", id))
}

func (h imagePages) edit(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	image, err := h.svcs.Images.Find(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "image_edit.html", gin.H{"Image": image})
}

// update renames the image and replaces its file when a new one was
// attached to the form.
func (h imagePages) update(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	var form imageForm
	if err := c.ShouldBind(&form); err != nil {
		renderServiceError(c, err)
		return
	}
	ctx := c.Request.Context()
	err := h.svcs.Images.Update(ctx, model.ImageDto{
		ImageID:  id,
		FileName: form.FileName,
	})
	if err != nil {
		renderServiceError(c, err)
		return
	}
	if upload, ferr := c.FormFile("ImageFile"); ferr == nil && upload != nil {
		if err := h.svcs.Images.UploadImageFile(ctx, id, upload); err != nil {
			renderServiceError(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/ImagePage/Details/%d", id))
}

func (h imagePages) confirmDelete(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	image, err := h.svcs.Images.Find(c.Request.Context(), id)
	if err != nil {
		renderServiceError(c, err)
		return
	}
	c.HTML(http.StatusOK, "image_confirm_delete.html", gin.H{"Image": image})
}

func (h imagePages) remove(c *gin.Context) {
	id, ok := pagePathID(c)
	if !ok {
		return
	}
	if err := h.svcs.Images.Delete(c.Request.Context(), id); err != nil {
		renderServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/ImagePage/List")
}
