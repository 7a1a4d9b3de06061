// Package orchestrator is the per-turn controller: classify the input,
// run a flow or the general responder, then optionally attach media and
// synthesized speech.
package orchestrator

import (
	"context"

	"github.com/google/uuid"

	"github.com/kritika-companion/server/internal/companion/flow"
	"github.com/kritika-companion/server/internal/companion/intent"
	"github.com/kritika-companion/server/internal/companion/model"
	logx "github.com/kritika-companion/server/pkg/logger"
)

// FlowRunner executes a flow for an intent. Implemented by flow.Executor.
type FlowRunner interface {
	Execute(ctx context.Context, intent model.Intent, params model.CollectedParameters, mode model.FlowMode) string
}

// Responder produces the general free-form reply. Implemented by
// respond.FallbackChain; never fails.
type Responder interface {
	Respond(ctx context.Context, prompt string) string
}

// MediaResolver resolves an optional media attachment for the turn.
type MediaResolver interface {
	Resolve(ctx context.Context, query model.MediaQuery) *model.MediaResult
}

type Config struct {
	Executor  FlowRunner
	Responder Responder
	Resolver  MediaResolver
	Speech    model.SpeechSynthesizer
	FlowMode  model.FlowMode
}

type Orchestrator struct {
	cues      *intent.CueDetector
	executor  FlowRunner
	responder Responder
	resolver  MediaResolver
	speech    model.SpeechSynthesizer
	flowMode  model.FlowMode
}

func New(cfg Config) (*Orchestrator, error) {
	cues, err := intent.NewCueDetector()
	if err != nil {
		return nil, err
	}
	return &Orchestrator{
		cues:      cues,
		executor:  cfg.Executor,
		responder: cfg.Responder,
		resolver:  cfg.Resolver,
		speech:    cfg.Speech,
		flowMode:  cfg.FlowMode,
	}, nil
}

// HandleTurn processes one user turn to completion. Every external failure
// along the way is recovered into degraded output; the only error returned
// is an intent missing from the flow slot schema, which is a programming
// error that should abort loudly.
//
// The flow branch and the media branch are independent scans over the same
// text: a turn can trigger both.
func (o *Orchestrator) HandleTurn(ctx context.Context, in model.TurnInput, slots model.SlotInputProvider) (model.TurnResult, error) {
	turnID := uuid.NewString()
	log := logx.Component("orchestrator").With().
		Str("turn_id", turnID).
		Str("conversation_id", in.ConversationID).
		Logger()

	classified := intent.Classify(in.Text)
	log.Debug().Str("intent", string(classified)).Msg("turn classified")

	result := model.TurnResult{TurnID: turnID, Intent: classified}

	if classified.IsNone() {
		result.Text = o.responder.Respond(ctx, in.Text)
	} else {
		params, err := flow.Collect(classified, slots)
		if err != nil {
			return model.TurnResult{}, err
		}
		result.Text = o.executor.Execute(ctx, classified, params, o.flowMode)
	}

	if kind, ok := o.cues.Detect(in.Text); ok && o.resolver != nil {
		query := model.MediaQuery{Text: in.Text, Preferred: kind}
		if media := o.resolver.Resolve(ctx, query); media != nil {
			result.Media = media
			log.Debug().Str("kind", string(media.Kind)).Str("url", media.URL).Msg("media attached")
		} else {
			log.Debug().Str("preferred", string(kind)).Msg("no media available")
		}
	}

	if o.speech != nil && result.Text != "" {
		audio, err := o.speech.Synthesize(ctx, result.Text)
		if err != nil {
			log.Warn().Err(err).Msg("speech synthesis failed, continuing without audio")
		} else {
			result.Audio = audio
		}
	}

	return result, nil
}
