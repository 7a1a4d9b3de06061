package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kritika-companion/server/internal/companion/flow"
	"github.com/kritika-companion/server/internal/companion/model"
)

type fakeResponder struct {
	reply string
	calls int
}

func (f *fakeResponder) Respond(context.Context, string) string {
	f.calls++
	return f.reply
}

type fakeResolver struct {
	result    *model.MediaResult
	lastQuery model.MediaQuery
	calls     int
}

func (f *fakeResolver) Resolve(_ context.Context, query model.MediaQuery) *model.MediaResult {
	f.calls++
	f.lastQuery = query
	return f.result
}

type fakeSynthesizer struct {
	audio []byte
	err   error
}

func (f *fakeSynthesizer) Synthesize(context.Context, string) ([]byte, error) {
	return f.audio, f.err
}

func fixture(t *testing.T, cfg Config) *Orchestrator {
	t.Helper()
	if cfg.Executor == nil {
		cfg.Executor = flow.NewExecutor(nil, "@acme/advisor/0.0.1")
	}
	if cfg.Responder == nil {
		cfg.Responder = &fakeResponder{reply: "general reply"}
	}
	if cfg.FlowMode == "" {
		cfg.FlowMode = model.ModeSimulated
	}

	o, err := New(cfg)
	require.NoError(t, err)
	return o
}

func TestHandleTurnAstrologyFlowWithDefaults(t *testing.T) {
	req := require.New(t)

	responder := &fakeResponder{reply: "should not be used"}
	o := fixture(t, Config{Responder: responder})

	result, err := o.HandleTurn(context.Background(),
		model.TurnInput{ConversationID: "c1", Text: "Tell me about my day"},
		model.NoSlotInput)

	req.NoError(err)
	req.Equal(model.IntentAstrology, result.Intent)
	req.Contains(result.Text, "[Simulated astrology response]")
	req.Contains(result.Text, "- question: Tell me about my day")
	req.Contains(result.Text, "- birth_details: 1990-01-01 12:00")
	req.NotEmpty(result.TurnID)
	req.Nil(result.Media)
	req.Zero(responder.calls, "flow turns bypass the general responder")
}

func TestHandleTurnGeneralResponse(t *testing.T) {
	req := require.New(t)

	responder := &fakeResponder{reply: "Hey! 🌟"}
	o := fixture(t, Config{Responder: responder})

	result, err := o.HandleTurn(context.Background(),
		model.TurnInput{Text: "good morning!"}, model.NoSlotInput)

	req.NoError(err)
	req.Equal(model.IntentNone, result.Intent)
	req.Equal("Hey! 🌟", result.Text)
	req.Equal(1, responder.calls)
}

func TestHandleTurnVideoCueAttachesMedia(t *testing.T) {
	req := require.New(t)

	resolver := &fakeResolver{
		result: &model.MediaResult{Kind: model.MediaVideo, URL: "https://www.youtube.com/watch?v=abc123"},
	}
	o := fixture(t, Config{Resolver: resolver})

	result, err := o.HandleTurn(context.Background(),
		model.TurnInput{Text: "show me a cat video"}, model.NoSlotInput)

	req.NoError(err)
	req.Equal(model.IntentNone, result.Intent)
	req.NotNil(result.Media)
	req.Equal(model.MediaVideo, result.Media.Kind)
	req.Equal(model.MediaVideo, resolver.lastQuery.Preferred)
	req.Equal("show me a cat video", resolver.lastQuery.Text)
}

func TestHandleTurnNoMediaIsNormal(t *testing.T) {
	req := require.New(t)

	resolver := &fakeResolver{result: nil}
	o := fixture(t, Config{Resolver: resolver})

	result, err := o.HandleTurn(context.Background(),
		model.TurnInput{Text: "show me a unicorn video"}, model.NoSlotInput)

	req.NoError(err)
	req.Equal(1, resolver.calls)
	req.Nil(result.Media)
	req.NotEmpty(result.Text, "the turn still gets reply text")
}

// The flow branch and the media cue scan are independent classifiers over
// the same text: one turn can trigger both.
func TestHandleTurnFlowAndMediaAreOrthogonal(t *testing.T) {
	req := require.New(t)

	resolver := &fakeResolver{
		result: &model.MediaResult{Kind: model.MediaVideo, URL: "v"},
	}
	o := fixture(t, Config{Resolver: resolver})

	result, err := o.HandleTurn(context.Background(),
		model.TurnInput{Text: "show me a laptop unboxing video"}, model.NoSlotInput)

	req.NoError(err)
	req.Equal(model.IntentTechAdvisor, result.Intent)
	req.Contains(result.Text, "[Simulated tech_advisor response]")
	req.NotNil(result.Media)
}

func TestHandleTurnNoCueSkipsResolver(t *testing.T) {
	req := require.New(t)

	resolver := &fakeResolver{}
	o := fixture(t, Config{Resolver: resolver})

	_, err := o.HandleTurn(context.Background(),
		model.TurnInput{Text: "good morning"}, model.NoSlotInput)

	req.NoError(err)
	req.Zero(resolver.calls)
}

func TestHandleTurnSlotInputOverridesDefaults(t *testing.T) {
	req := require.New(t)

	o := fixture(t, Config{})
	input := model.SlotInputFunc(func(_ model.Intent, spec model.SlotSpec) string {
		if spec.Name == "question" {
			return "Is today a good day for a haircut?"
		}
		return ""
	})

	result, err := o.HandleTurn(context.Background(),
		model.TurnInput{Text: "what does my horoscope say"}, input)

	req.NoError(err)
	req.Equal(model.IntentAstrology, result.Intent)
	req.Contains(result.Text, "- question: Is today a good day for a haircut?")
}

func TestHandleTurnSpeechFailureIsAbsorbed(t *testing.T) {
	req := require.New(t)

	o := fixture(t, Config{Speech: &fakeSynthesizer{err: errors.New("tts down")}})

	result, err := o.HandleTurn(context.Background(),
		model.TurnInput{Text: "good morning"}, model.NoSlotInput)

	req.NoError(err)
	req.Nil(result.Audio)
	req.NotEmpty(result.Text)
}

func TestHandleTurnSpeechAttachesAudio(t *testing.T) {
	req := require.New(t)

	o := fixture(t, Config{Speech: &fakeSynthesizer{audio: []byte{1, 2, 3}}})

	result, err := o.HandleTurn(context.Background(),
		model.TurnInput{Text: "good morning"}, model.NoSlotInput)

	req.NoError(err)
	req.Equal([]byte{1, 2, 3}, result.Audio)
}

func TestHandleTurnIDsAreUnique(t *testing.T) {
	req := require.New(t)

	o := fixture(t, Config{})
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		result, err := o.HandleTurn(context.Background(),
			model.TurnInput{Text: "hello"}, model.NoSlotInput)
		req.NoError(err)
		req.False(seen[result.TurnID])
		seen[result.TurnID] = true
	}
}
