package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/steveyiyo/guide-backend/internal/core/language"
	"github.com/steveyiyo/guide-backend/internal/core/speech"
	"github.com/steveyiyo/guide-backend/pkg/types"
)

type TTSHandler struct {
	Synth speech.Synthesizer
}

func NewTTSHandler(s speech.Synthesizer) *TTSHandler {
	return &TTSHandler{Synth: s}
}

// Synthesize reads text aloud, e.g. to replay a chat answer.
//
// @Summary  Synthesize speech
// @Tags     speech
// @Accept   json
// @Produce  audio/mpeg
// @Produce  audio/wav
// @Param    request  body  types.TTSReq  true  "Text, language label or code, optional speaker"
// @Success  200
// @Failure  400  {object}  types.ErrorResp
// @Failure  502  {object}  types.ErrorResp
// @Router   /api/tts [post]
func (h *TTSHandler) Synthesize(c *gin.Context) {
	var req types.TTSReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	lang := language.Resolve(req.Language)
	a := h.Synth.TextToSpeech(c.Request.Context(), req.Text, lang, req.Speaker)
	if a == nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "tts_failed"})
		return
	}
	writeAudio(c, a, lang)
}
