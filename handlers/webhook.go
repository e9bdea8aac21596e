package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"reservabot/models"
	"reservabot/services/booking"
	"reservabot/utils"
)

// WebhookHandler receives inbound messages from the WhatsApp gateway.
type WebhookHandler struct {
	Workflow booking.WorkflowService
	Logger   *zap.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(workflow booking.WorkflowService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Workflow: workflow, Logger: logger}
}

// HandleInbound interprets the gateway payload and runs the booking workflow.
func (h *WebhookHandler) HandleInbound(c *gin.Context) {
	var msg models.InboundMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}

	phone := msg.SenderPhone()
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone not provided"})
		return
	}

	result, err := h.Workflow.HandleMessage(c.Request.Context(), phone, msg.MessageText())
	if err != nil {
		h.Logger.Error("workflow failed", zap.String("phone", phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
		return
	}

	c.JSON(http.StatusOK, result)
}
