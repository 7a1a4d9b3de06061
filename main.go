package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/kritika-companion/server/internal/companion/flow"
	"github.com/kritika-companion/server/internal/companion/media"
	"github.com/kritika-companion/server/internal/companion/model"
	"github.com/kritika-companion/server/internal/companion/orchestrator"
	"github.com/kritika-companion/server/internal/companion/respond"
	"github.com/kritika-companion/server/internal/companion/speech"
	"github.com/kritika-companion/server/internal/core"
	logx "github.com/kritika-companion/server/pkg/logger"
	pkgredis "github.com/kritika-companion/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the companion demo,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment core.Environment `envconfig:"ENVIRONMENT" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Companion configs
	Generator model.GeneratorConfig
	Persona   model.PersonaConfig
	Flow      model.FlowConfig
	Media     model.MediaConfig
	Fallback  model.FallbackConfig
	Speech    model.SpeechConfig
}

func main() {
	fmt.Println("Testing Companion Turn Orchestrator...")
	ctx := context.Background()
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load structured config from env
	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: envCfg.Environment})

	rdb, err := envCfg.Redis.New()
	if err != nil {
		log.Fatalf("Failed to initialise Redis client: %v", err)
	}
	defer rdb.Close()

	fmt.Println("Connected to Redis successfully")

	// ====================================================
	// Build the turn orchestrator entirely from env
	cacheTTL, err := time.ParseDuration(envCfg.Media.CacheTTL)
	if err != nil {
		log.Fatalf("Invalid MEDIA_CACHE_TTL '%s': %v", envCfg.Media.CacheTTL, err)
	}

	resolver := media.NewResolver(
		media.NewRedisMediaCache(rdb, cacheTTL),
		media.NewYouTubeClient(envCfg.Media),
		media.NewTenorClient(envCfg.Media),
	)

	var backend model.FlowBackend
	if envCfg.Flow.Mode == model.ModeLive {
		backend = flow.NewBackendClient(envCfg.Flow)
	}
	executor := flow.NewExecutor(backend, envCfg.Flow.FlowID)

	var generator model.TextGenerator
	if envCfg.APIKey != "" {
		generator, err = respond.NewGeminiGenerator(ctx, envCfg.APIKey, envCfg.BaseURL, envCfg.Generator, envCfg.Persona)
		if err != nil {
			log.Fatalf("Failed to build Gemini generator: %v", err)
		}
	} else {
		log.Println("Warning: GEMINI_API_KEY unset, general responses come from the fallback pool")
	}

	var synthesizer model.SpeechSynthesizer
	if envCfg.Speech.Enabled {
		synthesizer = speech.NewClient(envCfg.Speech)
	}

	runner, err := orchestrator.New(orchestrator.Config{
		Executor:  executor,
		Responder: respond.NewFallbackChain(generator, envCfg.Fallback.Pool),
		Resolver:  resolver,
		Speech:    synthesizer,
		FlowMode:  envCfg.Flow.Mode,
	})
	if err != nil {
		log.Fatalf("Failed to build orchestrator: %v", err)
	}

	testTurns := []struct {
		description string
		text        string
	}{
		{
			description: "Astrology flow with all-default slots",
			text:        "Tell me about my day",
		},
		{
			description: "Media request routed to the video provider",
			text:        "show me a cat video",
		},
		{
			description: "General small talk through the responder",
			text:        "I'm feeling a bit lonely today",
		},
	}

	conversationID := "demo-conversation-1"

	for i, test := range testTurns {
		fmt.Printf("\n🚀 Turn %d: %s\n", i+1, test.description)
		fmt.Printf("Input: \"%s\"\n", test.text)
		fmt.Println("Processing...")

		result, err := runner.HandleTurn(ctx, model.TurnInput{
			ConversationID: conversationID,
			Text:           test.text,
		}, model.NoSlotInput)
		if err != nil {
			log.Fatalf("Failed to handle turn %d: %v", i+1, err)
		}

		fmt.Printf("✅ [%s] %s\n", result.Intent, result.Text)
		if result.Media != nil {
			fmt.Printf("   media: %s (%s)\n", result.Media.URL, result.Media.Kind)
		}
		if len(result.Audio) > 0 {
			fmt.Printf("   audio: %d bytes\n", len(result.Audio))
		}
		fmt.Println("─────────────────────────────────────────────")

		// slight delay between turns for readability
		time.Sleep(500 * time.Millisecond)
	}

	fmt.Println("🎉 All demo turns completed successfully!")
}
