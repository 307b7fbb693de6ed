// Package speech wraps the provider's combined speech-recognition and
// translation endpoint and its text-to-speech endpoint.
//
// Both entry points are failure-tolerant: recognition degrades to an empty
// transcript, synthesis to a nil *Audio, and callers are expected to fall
// back to a text-only reply.
package speech

import (
	"context"
	"net/http"
	"strings"

	"github.com/steveyiyo/guide-backend/internal/config"
)

const (
	MIMEMPEG = "audio/mpeg"
	MIMEWAV  = "audio/wav"

	authHeader = "api-subscription-key"
)

// Transcript is the pivot-language text recognised from an upload and the
// language the speaker used.
type Transcript struct {
	Text     string
	Language string
}

// Audio is synthesized speech held in memory for a single response.
type Audio struct {
	Data     []byte
	MIMEType string
}

// Extension is the file extension matching the MIME type.
func (a *Audio) Extension() string {
	if strings.HasSuffix(a.MIMEType, "mpeg") {
		return "mp3"
	}
	return "wav"
}

type Transcriber interface {
	SpeechToTextTranslate(ctx context.Context, audio []byte, mimeType string) Transcript
}

type Synthesizer interface {
	// TextToSpeech returns nil when no audio could be produced.
	TextToSpeech(ctx context.Context, text, targetLang, speaker string) *Audio
}

type Client struct {
	apiKey   string
	baseURL  string
	sttModel string
	ttsModel string
	speaker  string
	hc       *http.Client
}

func New(cfg config.SarvamConfig, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		sttModel: cfg.STTModel,
		ttsModel: cfg.TTSModel,
		speaker:  cfg.Speaker,
		hc:       hc,
	}
}
