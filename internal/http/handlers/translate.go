package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/steveyiyo/guide-backend/internal/core/language"
	"github.com/steveyiyo/guide-backend/internal/core/translate"
	"github.com/steveyiyo/guide-backend/pkg/types"
)

type TranslateHandler struct {
	Translator translate.Translator
}

func NewTranslateHandler(t translate.Translator) *TranslateHandler {
	return &TranslateHandler{Translator: t}
}

// Translate converts text between supported languages. Source may be "auto".
//
// @Summary  Translate text
// @Tags     language
// @Accept   json
// @Produce  json
// @Param    request  body      types.TranslateReq  true  "Text with source and target (label or code)"
// @Success  200      {object}  types.TranslateResp
// @Failure  400      {object}  types.ErrorResp
// @Router   /api/translate [post]
func (h *TranslateHandler) Translate(c *gin.Context) {
	var req types.TranslateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	src := language.Auto
	if req.Source != "" && req.Source != language.Auto {
		src = language.Resolve(req.Source)
	}
	res := h.Translator.Translate(c.Request.Context(), req.Text, src, language.Resolve(req.Target))
	c.JSON(http.StatusOK, types.TranslateResp{Text: res.Text, SourceLanguage: res.SourceLang})
}
