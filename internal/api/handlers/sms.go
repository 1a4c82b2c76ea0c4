package handlers

import (
	"net/http"

	"sms-assistant-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SMSHandler handles the inbound SMS webhook
type SMSHandler struct {
	router *service.RouterService
}

// NewSMSHandler creates a new SMS webhook handler
func NewSMSHandler(router *service.RouterService) *SMSHandler {
	return &SMSHandler{
		router: router,
	}
}

// HandleInbound handles POST /sms
// @Summary Inbound SMS webhook
// @Description Receive an inbound SMS from the gateway and reply to the sender. Always returns 200 so the gateway does not redeliver.
// @Tags sms
// @Accept x-www-form-urlencoded
// @Produce json
// @Param to formData string true "Shortcode the message was sent to"
// @Param from formData string true "Sender phone number"
// @Param text formData string true "Message text"
// @Success 200 {object} service.InboundResult "Message handled"
// @Failure 400 {object} ErrorResponse "Malformed webhook payload"
// @Router /sms [post]
func (h *SMSHandler) HandleInbound(c *gin.Context) {
	var msg service.InboundMessage
	if err := c.ShouldBind(&msg); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid webhook payload: " + err.Error()})
		return
	}
	if msg.To == "" || msg.From == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "to and from are required"})
		return
	}

	// The gateway only needs an acknowledgment; the reply itself goes out
	// through the SMS API, not this response.
	result := h.router.HandleInbound(c.Request.Context(), &msg)
	c.JSON(http.StatusOK, result)
}
