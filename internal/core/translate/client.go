// Package translate wraps the provider's language detection and translation
// endpoints. Failures never reach the caller: the original text comes back
// together with the best source language known at that point.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/steveyiyo/guide-backend/internal/config"
	"github.com/steveyiyo/guide-backend/internal/core/language"
)

const (
	detectPath    = "/detect-language"
	translatePath = "/translate"

	detectTimeout    = 10 * time.Second
	translateTimeout = 15 * time.Second

	// detectSample bounds how much text is sent for language detection.
	detectSample = 800
	// MaxInput is the provider's per-request character limit.
	MaxInput = 2000

	authHeader = "api-subscription-key"
)

// Result is a translated text plus the source language it was read as.
type Result struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_language"`
}

// Translator is what the pipeline needs from this package.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) Result
}

type Client struct {
	apiKey  string
	baseURL string
	model   string
	hc      *http.Client
}

func New(cfg config.SarvamConfig, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.TranslateModel,
		hc:      hc,
	}
}

// Translate converts text from sourceLang to targetLang. sourceLang may be
// language.Auto. Identical source and target return text unchanged.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{Text: "", SourceLang: language.Default}
	}
	if sourceLang == language.Auto {
		sourceLang = c.Detect(ctx, trimmed)
	}
	if sourceLang == targetLang {
		return Result{Text: text, SourceLang: sourceLang}
	}

	if n := len([]rune(trimmed)); n > MaxInput {
		slog.Warn("translation input too long, truncating", "chars", n, "limit", MaxInput)
		trimmed = Truncate(trimmed, MaxInput)
	}

	out, err := c.translate(ctx, trimmed, sourceLang, targetLang)
	if err != nil {
		slog.Warn("translation failed, keeping original text",
			"source", sourceLang, "target", targetLang, "error", err)
		return Result{Text: trimmed, SourceLang: sourceLang}
	}
	if out == "" {
		out = trimmed
	}
	return Result{Text: out, SourceLang: sourceLang}
}

// Detect returns the language code of text, or language.Default when the
// provider cannot tell.
func (c *Client) Detect(ctx context.Context, text string) string {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	var out struct {
		LanguageCode string `json:"language_code"`
	}
	err := c.postJSON(ctx, detectPath, map[string]string{"input": Truncate(text, detectSample)}, &out)
	if err != nil {
		slog.Warn("language detection failed, defaulting", "default", language.Default, "error", err)
		return language.Default
	}
	if out.LanguageCode == "" {
		return language.Default
	}
	slog.Debug("detected language", "code", out.LanguageCode)
	return out.LanguageCode
}

type translateRequest struct {
	Input               string `json:"input"`
	SourceLanguageCode  string `json:"source_language_code"`
	TargetLanguageCode  string `json:"target_language_code"`
	Mode                string `json:"mode"`
	Model               string `json:"model"`
	NumeralsFormat      string `json:"numerals_format"`
	EnablePreprocessing bool   `json:"enable_preprocessing"`
}

func (c *Client) translate(ctx context.Context, text, source, target string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, translateTimeout)
	defer cancel()

	req := translateRequest{
		Input:              text,
		SourceLanguageCode: source,
		TargetLanguageCode: target,
		Mode:               "formal",
		Model:              c.model,
		NumeralsFormat:     "native",
	}
	// Older API versions answer with "output", current ones with "translated_text".
	var out struct {
		Output         string `json:"output"`
		TranslatedText string `json:"translated_text"`
	}
	if err := c.postJSON(ctx, translatePath, req, &out); err != nil {
		return "", err
	}
	if out.Output != "" {
		return out.Output, nil
	}
	return out.TranslatedText, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshalling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set(authHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%s failed (status %d): %s", path, resp.StatusCode, msg)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
