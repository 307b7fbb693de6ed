package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/steveyiyo/guide-backend/internal/core/pipeline"
	"github.com/steveyiyo/guide-backend/pkg/types"
)

type ChatHandler struct {
	Pipeline *pipeline.Pipeline
}

func NewChatHandler(p *pipeline.Pipeline) *ChatHandler {
	return &ChatHandler{Pipeline: p}
}

// Chat answers a typed question.
//
// @Summary     Ask the guide a question
// @Description Translates the message to English, asks the guide, and translates the reply back to the UI language.
// @Tags        chat
// @Accept      json
// @Produce     json
// @Param       request  body      types.ChatReq   true  "Message and UI language"
// @Success     200      {object}  types.ChatResp
// @Failure     400      {object}  types.ErrorResp
// @Router      /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req types.ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if req.Language == "" {
		req.Language = "English"
	}
	turn := h.Pipeline.Chat(c.Request.Context(), req.Message, req.Language)
	c.JSON(http.StatusOK, types.ChatResp{
		Response:         turn.Response,
		DetectedLanguage: turn.DetectedLanguage,
		MapData:          turn.MapData,
	})
}
