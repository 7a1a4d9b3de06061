package model

import (
	"fmt"
	"strings"
)

// FlowMode selects between offline simulated execution and the live flow backend.
type FlowMode string

const (
	ModeSimulated FlowMode = "simulated"
	ModeLive      FlowMode = "live"
)

// Decode implements envconfig.Decoder for FLOW_MODE.
func (m *FlowMode) Decode(value string) error {
	switch FlowMode(value) {
	case ModeSimulated, ModeLive:
		*m = FlowMode(value)
		return nil
	case "":
		*m = ModeSimulated
		return nil
	default:
		return fmt.Errorf("unknown flow mode %q", value)
	}
}

// ================ Config ================

type GeneratorConfig struct {
	Model       string  `envconfig:"RESPONSE_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"RESPONSE_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"RESPONSE_TEMPERATURE" default:"0.4"`
}

type PersonaConfig struct {
	Name     string `envconfig:"PERSONA_NAME" default:"Kritika"`
	Blurb    string `envconfig:"PERSONA_BLURB" default:"a witty and intelligent college girl"`
	Language string `envconfig:"PERSONA_LANGUAGE" default:"en"`
}

type FlowConfig struct {
	Mode    FlowMode `envconfig:"FLOW_MODE" default:"simulated"`
	FlowID  string   `envconfig:"FLOW_ID" default:"@flamekaiser/karan-mira-clone/0.0.2"`
	BaseURL string   `envconfig:"FLOW_BASE_URL" default:"https://api.mira.network"`
	APIKey  string   `envconfig:"FLOW_API_KEY"`
	Timeout int      `envconfig:"FLOW_TIMEOUT_SECONDS" default:"30"`
}

type MediaConfig struct {
	YouTubeAPIKey string `envconfig:"YOUTUBE_API_KEY"`
	TenorAPIKey   string `envconfig:"TENOR_API_KEY"`
	Timeout       int    `envconfig:"MEDIA_TIMEOUT_SECONDS" default:"5"`
	MaxAttempts   int    `envconfig:"MEDIA_MAX_ATTEMPTS" default:"2"`
	VideoMinScore int    `envconfig:"MEDIA_VIDEO_MIN_SCORE" default:"1"`
	ImageMinScore int    `envconfig:"MEDIA_IMAGE_MIN_SCORE" default:"0"`
	CacheTTL      string `envconfig:"MEDIA_CACHE_TTL" default:"15m"`
}

// FallbackPool holds the canned degraded replies. Comma-splitting would
// mangle the strings, so overrides use the pipe separator.
type FallbackPool []string

// Decode implements envconfig.Decoder for FALLBACK_POOL.
func (p *FallbackPool) Decode(value string) error {
	if value == "" {
		*p = nil
		return nil
	}
	*p = FallbackPool(strings.Split(value, "|"))
	return nil
}

type FallbackConfig struct {
	Pool FallbackPool `envconfig:"FALLBACK_POOL"`
}

type SpeechConfig struct {
	Enabled  bool   `envconfig:"SPEECH_ENABLED" default:"false"`
	BaseURL  string `envconfig:"SPEECH_BASE_URL" default:"https://translate.google.com/translate_tts"`
	Language string `envconfig:"SPEECH_LANGUAGE" default:"en"`
	TLD      string `envconfig:"SPEECH_TLD" default:"co.in"`
	Timeout  int    `envconfig:"SPEECH_TIMEOUT_SECONDS" default:"10"`
}
