package controller

import (
	"curso_backend/internal/service"
	"curso_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// swagger:model AskRequest
type AskRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	TopicID   string `json:"topicId"`
	SessionID string `json:"sessionId"`
	Lang      string `json:"lang" binding:"omitempty,oneof=es pt"`
}

// Ask godoc
// @Summary Preguntar al asistente del curso
// @Description Respuesta en streaming SSE; la lección abierta se usa como contexto
// @Tags chat
// @Accept  json
// @Produce  text/event-stream
// @Security BearerAuth
// @Param   body body AskRequest true "Pregunta, lección abierta y sesión"
// @Success 200 {string} string "stream de eventos"
// @Failure 400 {object} util.Response "Petición inválida"
// @Router /api/chat/ask [post]
func (c *ChatController) Ask(ctx *gin.Context) {
	var req AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = c.ChatService.NewSessionID()
	}

	stream, errChan := c.ChatService.AskStream(ctx.Request.Context(), user.UserID, req.Lang, req.TopicID, sessionID, req.Prompt)

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	ctx.SSEvent("session", sessionID)
	ctx.Writer.Flush()

	for chunk := range stream {
		ctx.SSEvent("message", chunk)
		ctx.Writer.Flush()
	}

	if err := <-errChan; err != nil {
		ctx.SSEvent("error", err.Error())
		ctx.Writer.Flush()
	}

	ctx.SSEvent("end", "done")
	ctx.Writer.Flush()
}

// History godoc
// @Summary Historial de una sesión de chat
// @Tags chat
// @Produce  json
// @Security BearerAuth
// @Param   sessionId query string true "Id de la sesión"
// @Success 200 {object} util.Response{data=[]model.ChatMessage}
// @Router /api/chat/history [get]
func (c *ChatController) History(ctx *gin.Context) {
	sessionID := ctx.Query("sessionId")
	if sessionID == "" {
		util.BadRequest(ctx, "sessionId es obligatorio")
		return
	}

	user := util.GetUserFromContext(ctx)
	messages, err := c.ChatService.History(user.UserID, sessionID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, messages)
}
