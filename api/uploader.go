package api

import (
	"fmt"

	"imagehost/model"
	"imagehost/response"
	"imagehost/service"

	"github.com/gin-gonic/gin"
)

type uploaderAPI struct {
	svc *service.UploaderService
}

func RegisterUploader(g *gin.RouterGroup, svc *service.UploaderService) {
	h := uploaderAPI{svc: svc}
	g.GET("/Uploader/List", h.list)
	g.GET("/Uploader/Find/:id", h.find)
	g.POST("/Uploader/Add", h.add)
	g.PUT("/Uploader/Update/:id", h.update)
	g.DELETE("/Uploader/Delete/:id", h.remove)
}

func (h uploaderAPI) list(c *gin.Context) {
	dtos, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dtos)
}

func (h uploaderAPI) find(c *gin.Context) {
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

func (h uploaderAPI) add(c *gin.Context) {
	var dto model.UploaderDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	id, err := h.svc.Add(c.Request.Context(), dto)
	if err != nil {
		response.FromError(c, err)
		return
	}
	dto.UploaderID = id
	response.Created(c, fmt.Sprintf("api/Uploader/Find/%d", id), dto)
}

func (h uploaderAPI) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var dto model.UploaderDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if dto.UploaderID != id {
		response.BadRequestError(c, "route id does not match payload id")
		return
	}
	if err := h.svc.Update(c.Request.Context(), dto); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

func (h uploaderAPI) remove(c *gin.Context) {
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
