package api

import (
	"fmt"

	"imagehost/model"
	"imagehost/response"
	"imagehost/service"

	"github.com/gin-gonic/gin"
)

// uploadFieldName is the multipart form field carrying the image payload.
const uploadFieldName = "ImageFile"

type imageAPI struct {
	svc *service.ImageService
}

func RegisterImage(g *gin.RouterGroup, svc *service.ImageService) {
	h := imageAPI{svc: svc}
	g.GET("/Image/List", h.list)
	g.GET("/Image/Find/:id", h.find)
	g.POST("/Image/Add", h.add)
	g.PUT("/Image/Update/:id", h.update)
	g.DELETE("/Image/Delete/:id", h.remove)
	g.GET("/Image/ListImagesForProject/:projectId", h.listForProject)
	g.PUT("/Image/UploadImageFile/:id", h.uploadFile)
}

func (h imageAPI) list(c *gin.Context) {
	dtos, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dtos)
}

func (h imageAPI) find(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	dto, err := h.svc.Find(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dto)
}

func (h imageAPI) add(c *gin.Context) {
	var dto model.ImageDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	id, err := h.svc.Add(c.Request.Context(), dto)
	if err != nil {
		response.FromError(c, err)
		return
	}
	dto.ImageID = id
	response.Created(c, fmt.Sprintf("api/Image/Find/%d", id), dto)
}

func (h imageAPI) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var dto model.ImageDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if dto.ImageID != id {
		response.BadRequestError(c, "route id does not match payload id")
		return
	}
	if err := h.svc.Update(c.Request.Context(), dto); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

func (h imageAPI) remove(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

func (h imageAPI) listForProject(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	dtos, err := h.svc.ListImagesForProject(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dtos)
}

// uploadFile accepts multipart form data with the file under "ImageFile".
// A missing file is handed to the service as an empty upload so the
// validation error surfaces through the same envelope.
func (h imageAPI) uploadFile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	upload, err := c.FormFile(uploadFieldName)
	if err != nil {
		upload = nil
	}
	if err := h.svc.UploadImageFile(c.Request.Context(), id, upload); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}
