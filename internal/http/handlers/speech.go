package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/steveyiyo/guide-backend/internal/core/pipeline"
	"github.com/steveyiyo/guide-backend/internal/core/speech"
	"github.com/steveyiyo/guide-backend/pkg/types"
)

// maxUpload bounds a single voice recording.
const maxUpload = 25 << 20

type SpeechHandler struct {
	Pipeline *pipeline.Pipeline
}

func NewSpeechHandler(p *pipeline.Pipeline) *SpeechHandler {
	return &SpeechHandler{Pipeline: p}
}

// Speech answers a recorded question with synthesized speech.
//
// @Summary     Ask the guide by voice
// @Description Recognises and translates the recording, asks the guide, and replies with audio in the spoken language.
// @Description When synthesis fails the reply is JSON text instead.
// @Tags        chat
// @Accept      multipart/form-data
// @Produce     audio/mpeg
// @Produce     audio/wav
// @Produce     json
// @Param       audio     formData  file    true   "Recorded question"
// @Param       language  formData  string  false  "UI language label"
// @Success     200  {object}  types.SpeechFallbackResp  "Text fallback; otherwise binary audio with X-Detected-Language"
// @Failure     400  {object}  types.ErrorResp
// @Failure     413  {object}  types.ErrorResp
// @Router      /speech [post]
func (h *SpeechHandler) Speech(c *gin.Context) {
	fh, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file received"})
		return
	}
	if fh.Size > maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Audio file too large"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file received"})
		return
	}
	defer f.Close()
	audio, err := io.ReadAll(io.LimitReader(f, maxUpload+1))
	if err != nil || len(audio) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file received"})
		return
	}
	if len(audio) > maxUpload {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Audio file too large"})
		return
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = speech.DefaultUploadMIME
	}
	lang := c.DefaultPostForm("language", "English")

	turn := h.Pipeline.Voice(c.Request.Context(), audio, mimeType, lang)
	if turn.Audio == nil {
		slog.Info("speech synthesis unavailable, replying with text", "lang", turn.DetectedLanguage)
		c.JSON(http.StatusOK, types.SpeechFallbackResp{
			Response:         turn.Text,
			DetectedLanguage: turn.DetectedLanguage,
		})
		return
	}
	writeAudio(c, turn.Audio, turn.DetectedLanguage)
}

func writeAudio(c *gin.Context, a *speech.Audio, lang string) {
	c.Header("Cache-Control", "no-store")
	c.Header("Content-Disposition", `inline; filename="reply.`+a.Extension()+`"`)
	if lang != "" {
		c.Header("X-Detected-Language", lang)
	}
	c.Data(http.StatusOK, a.MIMEType, a.Data)
}
