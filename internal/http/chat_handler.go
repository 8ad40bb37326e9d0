package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotpink-connect/internal/domain"
	"hotpink-connect/internal/service"
)

// ChatHandler mantiene dependencias para los endpoints de mensajes.
type ChatHandler struct {
	logger   *zap.Logger
	messages *service.MessageService
}

type createMessageRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
	Msg  string `json:"msg" binding:"required"`
}

type deleteMessageResponse struct {
	Success bool           `json:"success"`
	Deleted domain.Message `json:"deleted"`
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, messages *service.MessageService) *ChatHandler {
	return &ChatHandler{
		logger:   logger,
		messages: messages,
	}
}

// CreateMessage maneja POST /chat.
func (h *ChatHandler) CreateMessage(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, "create message", service.ErrMessageInvalidInput)
		return
	}

	msg, err := h.messages.Create(c.Request.Context(), service.CreateMessageInput{
		From: req.From,
		To:   req.To,
		Msg:  req.Msg,
	})
	if err != nil {
		writeError(c, h.logger, "create message", err)
		return
	}

	h.logger.Info("message saved", zap.String("id", msg.ID))
	c.JSON(http.StatusCreated, msg)
}

// ListMessages maneja GET /chat.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages, err := h.messages.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "list messages", err)
		return
	}

	h.logger.Debug("listing messages", zap.Int("count", len(messages)))
	c.JSON(http.StatusOK, messages)
}

// ListUserMessages maneja GET /chat/:user.
func (h *ChatHandler) ListUserMessages(c *gin.Context) {
	user := c.Param("user")
	messages, err := h.messages.ListByUser(c.Request.Context(), user)
	if err != nil {
		writeError(c, h.logger, "list user messages", err)
		return
	}

	h.logger.Debug("listing user messages", zap.String("user", user), zap.Int("count", len(messages)))
	c.JSON(http.StatusOK, messages)
}

// GetMessage maneja GET /chat/id/:id.
func (h *ChatHandler) GetMessage(c *gin.Context) {
	msg, err := h.messages.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, "get message", err)
		return
	}

	c.JSON(http.StatusOK, msg)
}

// DeleteMessage maneja DELETE /chat/:id.
func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	id := c.Param("id")
	msg, err := h.messages.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, "delete message", err)
		return
	}

	h.logger.Info("message deleted", zap.String("id", id))
	c.JSON(http.StatusOK, deleteMessageResponse{Success: true, Deleted: msg})
}
