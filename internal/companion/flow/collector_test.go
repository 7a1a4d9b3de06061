package flow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kritika-companion/server/internal/companion/model"
	errx "github.com/kritika-companion/server/internal/core/error"
)

func TestCollectAllDefaults(t *testing.T) {
	req := require.New(t)

	// With no input at all, collection degrades to the declared defaults
	// for every registered intent.
	for _, it := range registeredIntents {
		params, err := Collect(it, model.NoSlotInput)
		req.NoError(err, "intent %s", it)

		defaults, err := Defaults(it)
		req.NoError(err)
		req.Equal(defaults, params, "intent %s", it)
	}
}

func TestCollectNilProviderFallsBackToDefaults(t *testing.T) {
	req := require.New(t)

	params, err := Collect(model.IntentTechAdvisor, nil)
	req.NoError(err)
	req.Equal(model.CollectedParameters{"question": "Need advice on choosing a laptop"}, params)
}

func TestCollectUserValuesWin(t *testing.T) {
	req := require.New(t)

	input := model.SlotInputFunc(func(_ model.Intent, spec model.SlotSpec) string {
		if spec.Name == "question" {
			return "Will Mercury retrograde ruin my week?"
		}
		return ""
	})

	params, err := Collect(model.IntentAstrology, input)
	req.NoError(err)
	req.Equal("Will Mercury retrograde ruin my week?", params["question"])
	req.Equal("1990-01-01 12:00", params["birth_details"])
}

func TestCollectBlankInputUsesDefault(t *testing.T) {
	req := require.New(t)

	input := model.SlotInputFunc(func(model.Intent, model.SlotSpec) string {
		return "   \t"
	})

	params, err := Collect(model.IntentFinance, input)
	req.NoError(err)
	req.Equal("How to start investing", params["user_query"])
}

func TestCollectUnknownIntent(t *testing.T) {
	req := require.New(t)

	_, err := Collect(model.Intent("dream_reader"), model.NoSlotInput)
	req.True(errors.Is(err, errx.ErrUnknownIntent))
}
