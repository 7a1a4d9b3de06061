package respond

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kritika-companion/server/internal/companion/model"
)

func TestInteractionStyle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Explain request", "Can you explain how DNS works?", "explanatory"},
		{"Help request", "HELP me with this", "explanatory"},
		{"Joke request", "tell me a joke", "playful"},
		{"Laughter", "haha that's great", "playful"},
		{"Sadness", "I'm feeling sad today", "empathetic"},
		{"Default", "good morning", "casual"},
		{"Empty", "", "casual"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, InteractionStyle(tt.input))
		})
	}
}

func TestRenderPersonaSystem(t *testing.T) {
	req := require.New(t)

	cfg := model.PersonaConfig{
		Name:  "Kritika",
		Blurb: "a witty and intelligent college girl",
	}

	out, err := RenderPersonaSystem(context.Background(), cfg, "playful")
	req.NoError(err)
	req.Contains(out, "Kritika")
	req.Contains(out, "a witty and intelligent college girl")
	req.Contains(out, "Interaction style for this turn: playful")
}
