package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/steveyiyo/guide-backend/internal/core/language"
)

const (
	sttPath    = "/speech-to-text-translate"
	sttTimeout = 60 * time.Second

	// DefaultUploadMIME is assumed when the browser does not label its recording.
	DefaultUploadMIME = "audio/webm"
)

// SpeechToTextTranslate uploads a recording and returns its English
// transcript with the detected spoken language. On any failure it returns an
// empty transcript in language.Default.
func (c *Client) SpeechToTextTranslate(ctx context.Context, audio []byte, mimeType string) Transcript {
	if mimeType == "" {
		mimeType = DefaultUploadMIME
	}
	out, err := c.recognize(ctx, audio, mimeType)
	if err != nil {
		slog.Warn("speech-to-text-translate failed", "mime", mimeType, "bytes", len(audio), "error", err)
		return Transcript{Text: "", Language: language.Default}
	}
	if out.Language == "" {
		out.Language = language.Default
	}
	return out
}

func (c *Client) recognize(ctx context.Context, audio []byte, mimeType string) (Transcript, error) {
	ctx, cancel := context.WithTimeout(ctx, sttTimeout)
	defer cancel()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="mic_input%s"`, extFromContentType(mimeType)))
	h.Set("Content-Type", mimeType)
	part, err := w.CreatePart(h)
	if err != nil {
		return Transcript{}, fmt.Errorf("creating file part: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return Transcript{}, fmt.Errorf("writing audio: %w", err)
	}
	_ = w.WriteField("model", c.sttModel)
	if err := w.Close(); err != nil {
		return Transcript{}, fmt.Errorf("closing multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sttPath, body)
	if err != nil {
		return Transcript{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set(authHeader, c.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.hc.Do(req)
	if err != nil {
		return Transcript{}, fmt.Errorf("stt request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Transcript{}, fmt.Errorf("stt failed (status %d): %s", resp.StatusCode, msg)
	}

	var result struct {
		Transcript   string `json:"transcript"`
		LanguageCode string `json:"language_code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Transcript{}, fmt.Errorf("decoding stt response: %w", err)
	}
	return Transcript{Text: result.Transcript, Language: result.LanguageCode}, nil
}

func extFromContentType(ct string) string {
	switch {
	case strings.Contains(ct, "webm"):
		return ".webm"
	case strings.Contains(ct, "ogg"):
		return ".ogg"
	case strings.Contains(ct, "wav"):
		return ".wav"
	case strings.Contains(ct, "mp3"), strings.Contains(ct, "mpeg"):
		return ".mp3"
	case strings.Contains(ct, "mp4"), strings.Contains(ct, "m4a"):
		return ".m4a"
	case strings.Contains(ct, "flac"):
		return ".flac"
	default:
		return ".webm"
	}
}
