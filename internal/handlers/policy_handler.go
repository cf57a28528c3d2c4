package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insurai_backend/internal/middleware"
	"insurai_backend/internal/models"
	"insurai_backend/internal/services"
	"insurai_backend/internal/services/dto"
)

type PolicyHandler struct {
	*BaseHandler
	policyService services.PolicyService
}

func NewPolicyHandler(base *BaseHandler, policyService services.PolicyService) *PolicyHandler {
	return &PolicyHandler{
		BaseHandler:   base,
		policyService: policyService,
	}
}

func (h *PolicyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/policies")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("/available", h.GetAvailablePolicies)
		group.GET("/mine", h.GetMyPolicies)
		group.GET("/:policyId", h.GetPolicy)
		group.POST("/buy/:policyId", h.BuyPolicy)

		agentOnly := group.Group("")
		agentOnly.Use(middleware.RequireCategories(models.UserCategoryAgent, models.UserCategoryAdmin))
		{
			agentOnly.POST("", h.CreatePolicy)
			agentOnly.GET("/agent/mine", h.GetAgentPolicies)
			agentOnly.PUT("/:policyId", h.UpdatePolicy)
			agentOnly.DELETE("/:policyId", h.DeletePolicy)
		}
	}
}

func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePolicyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	policy, err := h.policyService.CreatePolicy(agentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, policy)
}

func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	policy, err := h.policyService.GetPolicy(c.Param("policyId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}

func (h *PolicyHandler) GetMyPolicies(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	policies, err := h.policyService.GetUserPolicies(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, policies)
}

func (h *PolicyHandler) GetAgentPolicies(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	policies, err := h.policyService.GetAgentPolicies(agentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, policies)
}

func (h *PolicyHandler) GetAvailablePolicies(c *gin.Context) {
	policies, err := h.policyService.GetAvailablePolicies()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, policies)
}

func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	var req dto.UpdatePolicyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	policy, err := h.policyService.UpdatePolicy(c.Param("policyId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}

func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	if err := h.policyService.DeletePolicy(c.Param("policyId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PolicyHandler) BuyPolicy(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	policy, err := h.policyService.BuyPolicy(c.Param("policyId"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}
