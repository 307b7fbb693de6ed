// Package pipeline sequences one conversation turn across the translation,
// speech, geocoding and generation collaborators.
//
// A turn runs strictly in order and every step degrades to a default value
// instead of failing, so Chat and Voice always produce a reply.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/steveyiyo/guide-backend/internal/core/geo"
	"github.com/steveyiyo/guide-backend/internal/core/guide"
	"github.com/steveyiyo/guide-backend/internal/core/language"
	"github.com/steveyiyo/guide-backend/internal/core/speech"
	"github.com/steveyiyo/guide-backend/internal/core/translate"
)

// Pivot is the language the generator reads and writes.
const Pivot = language.Default

type Deps struct {
	Translator  translate.Translator
	Transcriber speech.Transcriber
	Synthesizer speech.Synthesizer
	Responder   guide.Responder
	// Geocoder is optional; nil behaves like a lookup that found nothing.
	Geocoder geo.Geocoder
	// Speaker overrides the synthesizer's default voice.
	Speaker string
}

type Pipeline struct {
	d Deps
}

func New(d Deps) *Pipeline {
	return &Pipeline{d: d}
}

// ChatTurn is the outcome of a text turn.
type ChatTurn struct {
	Response         string        `json:"response"`
	DetectedLanguage string        `json:"detected_language"`
	MapData          *geo.Location `json:"map_data"`
}

// VoiceTurn is the outcome of a voice turn. Audio is nil when synthesis
// failed and the caller must answer with Text instead.
type VoiceTurn struct {
	Transcript       string
	Text             string
	DetectedLanguage string
	Audio            *speech.Audio
}

// Chat answers a typed message written in the UI language uiLanguage.
func (p *Pipeline) Chat(ctx context.Context, message, uiLanguage string) ChatTurn {
	src := language.Code(uiLanguage)

	in := p.d.Translator.Translate(ctx, message, src, Pivot)
	prompt := p.prepare(in.Text)

	// Geocoding works on the visitor's own words, place names survive better
	// untranslated.
	mapData := p.geocode(ctx, message)

	reply := p.d.Responder.Reply(ctx, prompt)
	out := p.d.Translator.Translate(ctx, reply, Pivot, src)

	slog.Debug("chat turn complete", "ui_lang", src, "detected", in.SourceLang, "has_map", mapData != nil)
	return ChatTurn{
		Response:         out.Text,
		DetectedLanguage: in.SourceLang,
		MapData:          mapData,
	}
}

// Voice answers a recorded question. The reply is spoken in the language the
// visitor used, regardless of the UI language.
func (p *Pipeline) Voice(ctx context.Context, audio []byte, mimeType, uiLanguage string) VoiceTurn {
	tr := p.d.Transcriber.SpeechToTextTranslate(ctx, audio, mimeType)
	lang := tr.Language
	if lang == "" {
		lang = language.Default
	}
	slog.Info("voice turn transcribed",
		"ui_lang", language.Code(uiLanguage),
		"detected", lang,
		"detected_name", language.Name(lang),
		"chars", len(tr.Text))

	reply := p.d.Responder.Reply(ctx, p.prepare(tr.Text))
	out := p.d.Translator.Translate(ctx, reply, Pivot, lang)

	return VoiceTurn{
		Transcript:       tr.Text,
		Text:             out.Text,
		DetectedLanguage: lang,
		Audio:            p.d.Synthesizer.TextToSpeech(ctx, out.Text, lang, p.d.Speaker),
	}
}

func (p *Pipeline) prepare(text string) string {
	if p.d.Responder.IsCompareQuery(text) {
		return guide.EnrichCompare(text)
	}
	return text
}

func (p *Pipeline) geocode(ctx context.Context, text string) *geo.Location {
	if p.d.Geocoder == nil {
		return nil
	}
	return p.d.Geocoder.Geocode(ctx, text)
}
