package types

import "github.com/steveyiyo/guide-backend/internal/core/geo"

type ChatReq struct {
	Message  string `json:"message" example:"Compare Victoria Memorial and Eden Gardens"`
	Language string `json:"language" example:"English"`
}

type ChatResp struct {
	Response         string        `json:"response"`
	DetectedLanguage string        `json:"detected_language" example:"en-IN"`
	MapData          *geo.Location `json:"map_data"`
}

// SpeechFallbackResp is returned by /speech when no audio could be synthesized.
type SpeechFallbackResp struct {
	Response         string `json:"response"`
	DetectedLanguage string `json:"detected_language" example:"bn-IN"`
}

type TTSReq struct {
	Text     string `json:"text"`
	Language string `json:"language" example:"Bengali"`
	Speaker  string `json:"speaker" example:"anushka"`
}

type TranslateReq struct {
	Text   string `json:"text"`
	Source string `json:"source" example:"auto"`
	Target string `json:"target" example:"English"`
}

type TranslateResp struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
}

type MapKeyResp struct {
	ORSKey string `json:"ors_key"`
}

// RouteReq carries [longitude, latitude] pairs.
type RouteReq struct {
	Start []float64 `json:"start"`
	End   []float64 `json:"end"`
}

type PlacesResp struct {
	Places []geo.Location `json:"places"`
}

type ErrorResp struct {
	Error string `json:"error"`
}

// StreamFrame is one message on the chat websocket, in either direction.
type StreamFrame struct {
	Type             string        `json:"type"`
	SessionID        string        `json:"session_id,omitempty"`
	TS               int64         `json:"ts,omitempty"`
	Message          string        `json:"message,omitempty"`
	Language         string        `json:"language,omitempty"`
	Response         string        `json:"response,omitempty"`
	DetectedLanguage string        `json:"detected_language,omitempty"`
	MapData          *geo.Location `json:"map_data,omitempty"`
	Error            string        `json:"error,omitempty"`
}
