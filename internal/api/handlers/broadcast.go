package handlers

import (
	"net/http"
	"strconv"

	"sms-assistant-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BroadcastHandler handles HTTP requests for broadcast operations
type BroadcastHandler struct {
	broadcastService *service.BroadcastService
}

// NewBroadcastHandler creates a new broadcast handler
func NewBroadcastHandler(broadcastService *service.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{
		broadcastService: broadcastService,
	}
}

// SendBroadcast handles POST /broadcasts
// @Summary Send a broadcast
// @Description Send an announcement to every number in the named areas from the organization's shortcode
// @Tags broadcasts
// @Accept json
// @Produce json
// @Param broadcast body service.BroadcastRequest true "Broadcast data"
// @Success 200 {object} service.BroadcastResponse "Broadcast sent"
// @Failure 400 {object} ErrorResponse "Invalid request or no recipients"
// @Failure 404 {object} ErrorResponse "Shortcode not found"
// @Failure 502 {object} ErrorResponse "Gateway delivery failure"
// @Router /broadcasts [post]
func (h *BroadcastHandler) SendBroadcast(c *gin.Context) {
	var req service.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.broadcastService.Send(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListBroadcasts handles GET /broadcasts
// @Summary List an organization's broadcasts
// @Description Get the broadcast history of an organization with pagination
// @Tags broadcasts
// @Produce json
// @Param organization_id query string true "Organization ID"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Broadcasts retrieved"
// @Failure 400 {object} ErrorResponse "Missing or invalid organization ID"
// @Router /broadcasts [get]
func (h *BroadcastHandler) ListBroadcasts(c *gin.Context) {
	orgID, err := uuid.Parse(c.Query("organization_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "organization_id parameter is required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	messages, total, err := h.broadcastService.GetByOrganizationID(orgID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages, "total": total})
}
