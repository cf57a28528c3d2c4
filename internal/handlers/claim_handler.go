package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insurai_backend/internal/middleware"
	"insurai_backend/internal/models"
	"insurai_backend/internal/services"
	"insurai_backend/internal/services/dto"
)

type ClaimHandler struct {
	*BaseHandler
	claimService services.ClaimService
}

func NewClaimHandler(base *BaseHandler, claimService services.ClaimService) *ClaimHandler {
	return &ClaimHandler{
		BaseHandler:  base,
		claimService: claimService,
	}
}

func (h *ClaimHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/claims")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("", h.CreateClaim)
		group.GET("/mine", h.GetMyClaims)
		group.GET("/:claimId", h.GetClaim)

		agentOnly := group.Group("")
		agentOnly.Use(middleware.RequireCategories(models.UserCategoryAgent, models.UserCategoryAdmin))
		{
			agentOnly.GET("", h.GetAllClaims)
			agentOnly.PUT("/:claimId", h.UpdateClaim)
			agentOnly.DELETE("/:claimId", h.DeleteClaim)
		}
	}
}

func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateClaimRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	claim, err := h.claimService.CreateClaim(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, claim)
}

func (h *ClaimHandler) GetClaim(c *gin.Context) {
	claim, err := h.claimService.GetClaim(c.Param("claimId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

func (h *ClaimHandler) GetAllClaims(c *gin.Context) {
	claims, err := h.claimService.GetAllClaims()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, claims)
}

func (h *ClaimHandler) GetMyClaims(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	claims, err := h.claimService.GetUserClaims(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, claims)
}

func (h *ClaimHandler) UpdateClaim(c *gin.Context) {
	var req dto.UpdateClaimRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	claim, err := h.claimService.UpdateClaim(c.Param("claimId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

func (h *ClaimHandler) DeleteClaim(c *gin.Context) {
	if err := h.claimService.DeleteClaim(c.Param("claimId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
