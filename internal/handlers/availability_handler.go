package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insurai_backend/internal/middleware"
	"insurai_backend/internal/models"
	"insurai_backend/internal/services"
	"insurai_backend/internal/services/dto"
)

type AvailabilityHandler struct {
	*BaseHandler
	availabilityService services.AvailabilityService
}

func NewAvailabilityHandler(base *BaseHandler, availabilityService services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{
		BaseHandler:         base,
		availabilityService: availabilityService,
	}
}

func (h *AvailabilityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/availability")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("/online-agents", h.GetOnlineAgents)
		group.GET("/slots", h.GetAvailableSlots)
		group.GET("/agent/:agentId", h.GetAgentAvailability)
		group.POST("/book/:slotId", h.BookSlot)

		agentOnly := group.Group("")
		agentOnly.Use(middleware.RequireCategories(models.UserCategoryAgent, models.UserCategoryAdmin))
		{
			agentOnly.POST("", h.CreateAvailability)
			agentOnly.GET("/mine", h.GetMyAvailability)
			agentOnly.PUT("/:slotId", h.UpdateAvailability)
			agentOnly.GET("/booked-requests", h.GetBookedRequests)
		}
	}
}

func (h *AvailabilityHandler) CreateAvailability(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAvailabilityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	slot, err := h.availabilityService.CreateAvailability(agentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func (h *AvailabilityHandler) GetMyAvailability(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	slots, err := h.availabilityService.GetAgentAvailability(agentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *AvailabilityHandler) GetAgentAvailability(c *gin.Context) {
	slots, err := h.availabilityService.GetAgentAvailability(c.Param("agentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	slots, err := h.availabilityService.GetAvailableSlots()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

func (h *AvailabilityHandler) UpdateAvailability(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	slotID, err := ParseParamUint(c, "slotId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateAvailabilityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	slot, err := h.availabilityService.UpdateAvailability(agentID, slotID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// BookSlot books the slot for the calling user. 404 means the slot never
// existed, 409 means someone else won it.
func (h *AvailabilityHandler) BookSlot(c *gin.Context) {
	clientID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	slotID, err := ParseParamUint(c, "slotId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	slot, err := h.availabilityService.BookSlot(slotID, clientID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

func (h *AvailabilityHandler) GetOnlineAgents(c *gin.Context) {
	agents, err := h.availabilityService.GetOnlineAgents()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, agents)
}

func (h *AvailabilityHandler) GetBookedRequests(c *gin.Context) {
	agentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	requests, err := h.availabilityService.GetBookedRequestsByAgent(agentID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
