package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	ttsPath    = "/text-to-speech"
	ttsTimeout = 30 * time.Second

	// maxAudioBytes bounds a single synthesized reply.
	maxAudioBytes = 20 << 20
)

type ttsRequest struct {
	Text                string  `json:"text"`
	TargetLanguageCode  string  `json:"target_language_code"`
	Speaker             string  `json:"speaker"`
	Pitch               float64 `json:"pitch"`
	Pace                float64 `json:"pace"`
	Loudness            float64 `json:"loudness"`
	SpeechSampleRate    int     `json:"speech_sample_rate"`
	EnablePreprocessing bool    `json:"enable_preprocessing"`
	Model               string  `json:"model"`
	Format              string  `json:"format"`
	AudioFormat         string  `json:"audio_format"`
}

// TextToSpeech synthesizes text in targetLang. An empty speaker uses the
// configured default. It returns nil on any failure.
func (c *Client) TextToSpeech(ctx context.Context, text, targetLang, speaker string) *Audio {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if speaker == "" {
		speaker = c.speaker
	}
	a, err := c.synthesize(ctx, text, targetLang, speaker)
	if err != nil {
		slog.Warn("text-to-speech failed", "lang", targetLang, "speaker", speaker, "error", err)
		return nil
	}
	return a
}

func (c *Client) synthesize(ctx context.Context, text, targetLang, speaker string) (*Audio, error) {
	ctx, cancel := context.WithTimeout(ctx, ttsTimeout)
	defer cancel()

	payload, err := json.Marshal(ttsRequest{
		Text:                text,
		TargetLanguageCode:  targetLang,
		Speaker:             speaker,
		Pitch:               0,
		Pace:                1,
		Loudness:            1,
		SpeechSampleRate:    22050,
		EnablePreprocessing: true,
		Model:               c.ttsModel,
		Format:              "mp3",
		AudioFormat:         "mp3",
	})
	if err != nil {
		return nil, fmt.Errorf("marshalling tts request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ttsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set(authHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("tts failed (status %d): %s", resp.StatusCode, msg)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading tts body: %w", err)
	}
	if len(data) > maxAudioBytes {
		return nil, fmt.Errorf("tts body exceeds %d bytes", maxAudioBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("tts returned an empty body")
	}

	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(ct, "json") {
		return decodeEnvelope(data)
	}
	return &Audio{Data: data, MIMEType: NormalizeMIME(ct)}, nil
}

// decodeEnvelope handles the JSON form of the synthesis response, which
// carries base64 WAV clips instead of raw bytes.
func decodeEnvelope(data []byte) (*Audio, error) {
	var env struct {
		Audios []string `json:"audios"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding tts envelope: %w", err)
	}
	if len(env.Audios) == 0 || env.Audios[0] == "" {
		return nil, fmt.Errorf("tts envelope has no audio")
	}
	raw, err := base64.StdEncoding.DecodeString(env.Audios[0])
	if err != nil {
		return nil, fmt.Errorf("decoding tts audio: %w", err)
	}
	return &Audio{Data: raw, MIMEType: MIMEWAV}, nil
}

// NormalizeMIME maps the provider's content type onto what browsers expect.
// Unlabelled or generic binary bodies are MP3.
func NormalizeMIME(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch {
	case ct == "", strings.Contains(ct, "octet-stream"):
		return MIMEMPEG
	case ct == "audio/wave", ct == "audio/x-wav":
		return MIMEWAV
	}
	return ct
}
