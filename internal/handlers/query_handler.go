package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insurai_backend/internal/middleware"
	"insurai_backend/internal/services"
	"insurai_backend/internal/services/dto"
)

type QueryHandler struct {
	*BaseHandler
	queryService services.QueryService
}

func NewQueryHandler(base *BaseHandler, queryService services.QueryService) *QueryHandler {
	return &QueryHandler{
		BaseHandler:  base,
		queryService: queryService,
	}
}

func (h *QueryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/voice-query", middleware.AuthMiddleware(), h.ProcessQuery)
}

func (h *QueryHandler) ProcessQuery(c *gin.Context) {
	var req dto.QueryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, dto.QueryResponse{
		Response: h.queryService.ProcessQuery(req.Query),
	})
}
