package api

import (
	"fmt"

	"imagehost/model"
	"imagehost/response"
	"imagehost/service"

	"github.com/gin-gonic/gin"
)

type projectAPI struct {
	svc *service.ProjectService
}

func RegisterProject(g *gin.RouterGroup, svc *service.ProjectService) {
	h := projectAPI{svc: svc}
	g.GET("/Project/List", h.list)
	g.GET("/Project/Find/:id", h.find)
	g.POST("/Project/Add", h.add)
	g.PUT("/Project/Update/:id", h.update)
	g.DELETE("/Project/Delete/:id", h.remove)
	g.GET("/Project/ListProjectsForUploader/:uploaderId", h.listForUploader)
	g.GET("/Project/ListTagsForProject/:projectId", h.listTags)
	g.POST("/Project/LinkTag", h.linkTag)
	g.DELETE("/Project/UnlinkTag", h.unlinkTag)
}

func (h projectAPI) list(c *gin.Context) {
	dtos, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dtos)
}

func (h projectAPI) find(c *gin.Context) {
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

func (h projectAPI) add(c *gin.Context) {
	var dto model.ProjectDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	id, err := h.svc.Add(c.Request.Context(), dto)
	if err != nil {
		response.FromError(c, err)
		return
	}
	dto.ProjectID = id
	response.Created(c, fmt.Sprintf("api/Project/Find/%d", id), dto)
}

func (h projectAPI) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var dto model.ProjectDto
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if dto.ProjectID != id {
		response.BadRequestError(c, "route id does not match payload id")
		return
	}
	if err := h.svc.Update(c.Request.Context(), dto); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

func (h projectAPI) remove(c *gin.Context) {
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

func (h projectAPI) listForUploader(c *gin.Context) {
	id, ok := pathID(c, "uploaderId")
	if !ok {
		return
	}
	dtos, err := h.svc.ListProjectsForUploader(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dtos)
}

func (h projectAPI) listTags(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	dtos, err := h.svc.ListTagsForProject(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, dtos)
}

type tagLinkReq struct {
	TagID     uint `json:"tagId" form:"tagId" binding:"required"`
	ProjectID uint `json:"projectId" form:"projectId" binding:"required"`
}

func (h projectAPI) linkTag(c *gin.Context) {
	var req tagLinkReq
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if err := h.svc.LinkTagToProject(c.Request.Context(), req.TagID, req.ProjectID); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}

func (h projectAPI) unlinkTag(c *gin.Context) {
	var req tagLinkReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if err := h.svc.UnlinkTagFromProject(c.Request.Context(), req.TagID, req.ProjectID); err != nil {
		response.FromError(c, err)
		return
	}
	response.NoContent(c)
}
