package api

import (
	"fmt"

	"imagehost/model"
	"imagehost/response"
	"imagehost/service"

	"github.com/gin-gonic/gin"
)

type tagAPI struct {
	svc *service.TagService
}

func RegisterTag(g *gin.RouterGroup, svc *service.TagService) {
	h := tagAPI{svc: svc}
	g.GET("/Tag/List", h.list)
	g.GET("/Tag/Find/:id", h.find)
	g.POST("/Tag/Add", h.add)
	g.PUT("/Tag/Update/:id", h.update)
	g.DELETE("/Tag/Delete/:id", h.remove)
	g.GET("/Tag/ListProjectsForTag/:id", h.listProjects)
}

func (h tagAPI) list(c *gin.Context) {
	dtos, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dtos)
}

func (h tagAPI) find(c *gin.Context) {
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

func (h tagAPI) add(c *gin.Context) {
	var dto model.TagDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	id, err := h.svc.Add(c.Request.Context(), dto)
	if err != nil {
		response.FromError(c, err)
		return
	}
	dto.TagID = id
	response.Created(c, fmt.Sprintf("api/Tag/Find/%d", id), dto)
}

func (h tagAPI) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var dto model.TagDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if dto.TagID != id {
		response.BadRequestError(c, "route id does not match payload id")
		return
	}
	if err := h.svc.Update(c.Request.Context(), dto); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

func (h tagAPI) remove(c *gin.Context) {
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

func (h tagAPI) listProjects(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	dtos, err := h.svc.ListProjectsForTag(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dtos)
}
