// Package respond produces the free-form reply text for a turn: a persona
// prompt over a Gemini chat model, guarded by a canned fallback pool.
package respond

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/kritika-companion/server/internal/companion/model"
)

//go:embed template/persona_prompt.txt
var personaSystemPrompt string

// InteractionStyle derives the conversational register from the user input.
func InteractionStyle(userInput string) string {
	lowered := strings.ToLower(userInput)

	switch {
	case containsAny(lowered, "help", "explain", "how", "why"):
		return "explanatory"
	case containsAny(lowered, "joke", "fun", "lol", "haha"):
		return "playful"
	case containsAny(lowered, "sad", "angry", "upset"):
		return "empathetic"
	default:
		return "casual"
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// RenderPersonaSystem renders the persona system prompt via the Eino prompt
// component so prompt callbacks fire the same way as for any other template.
func RenderPersonaSystem(ctx context.Context, cfg model.PersonaConfig, style string) (string, error) {
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(personaSystemPrompt),
	)
	msgs, err := tpl.Format(ctx, map[string]any{
		"PersonaName":      cfg.Name,
		"PersonaBlurb":     cfg.Blurb,
		"InteractionStyle": style,
	})
	if err != nil {
		return "", fmt.Errorf("persona prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("persona prompt render: empty result")
	}
	return msgs[0].Content, nil
}
