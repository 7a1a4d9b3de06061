package respond

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/kritika-companion/server/internal/companion/model"
	errx "github.com/kritika-companion/server/internal/core/error"
	logx "github.com/kritika-companion/server/pkg/logger"
)

// GeminiGenerator is the live model.TextGenerator backed by a Gemini chat
// model.
type GeminiGenerator struct {
	chatModel *gemini.ChatModel
	persona   model.PersonaConfig
	modelName string
}

// NewGeminiGenerator creates the Gemini client and chat model with the given
// configuration.
func NewGeminiGenerator(ctx context.Context, apiKey, baseURL string, genCfg model.GeneratorConfig, persona model.PersonaConfig) (*GeminiGenerator, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientCfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       genCfg.Model,
		Temperature: &genCfg.Temperature,
		MaxTokens:   &genCfg.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating response model")
		return nil, fmt.Errorf("error creating response model: %w", err)
	}

	return &GeminiGenerator{
		chatModel: chatModel,
		persona:   persona,
		modelName: genCfg.Model,
	}, nil
}

// Generate renders the persona prompt for the input's interaction style and
// asks the chat model for a reply.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	system, err := RenderPersonaSystem(ctx, g.persona, InteractionStyle(prompt))
	if err != nil {
		return "", errx.WrapGeneration(err)
	}

	out, err := g.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(prompt),
	})
	if err != nil {
		return "", errx.WrapGeneration(err)
	}
	if out == nil || out.Content == "" {
		return "", errx.WrapGeneration(errors.New("empty model output"))
	}

	g.logUsage(out)
	return out.Content, nil
}

func (g *GeminiGenerator) logUsage(msg *schema.Message) {
	if msg.ResponseMeta == nil || msg.ResponseMeta.Usage == nil {
		return
	}
	inputCost, outputCost, total := model.ComputeCost(msg.ResponseMeta.Usage, model.ResolvePricing(g.modelName))
	logx.Debug().
		Str("model", g.modelName).
		Int("prompt_tokens", msg.ResponseMeta.Usage.PromptTokens).
		Int("completion_tokens", msg.ResponseMeta.Usage.CompletionTokens).
		Float64("input_cost_usd", inputCost).
		Float64("output_cost_usd", outputCost).
		Float64("total_cost_usd", total).
		Msg("generation usage")
}

var _ model.TextGenerator = (*GeminiGenerator)(nil)
