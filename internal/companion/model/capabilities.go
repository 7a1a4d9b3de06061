package model

import "context"

// TextGenerator is the opaque free-form generation capability: given a
// prompt, produce text or fail. Failures are recovered by the fallback chain.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FlowBackend executes a specialized flow scoped by a versioned flow id.
// The payload shape is intent-specific; see flow.Executor.
type FlowBackend interface {
	Execute(ctx context.Context, flowID string, payload map[string]any) (string, error)
}

// MediaProvider wraps one external media search capability. Implementations
// absorb transient failures internally (bounded retry, then empty result).
type MediaProvider interface {
	// Kind reports the media family this provider serves.
	Kind() MediaKind
	// Search returns raw candidates for the query. An empty slice means
	// "no media available", never an error condition for the caller.
	Search(ctx context.Context, query string) []MediaCandidate
	// MinScore is the provider's minimum acceptable relevance score.
	// A top candidate scoring below it is treated as absence.
	MinScore() int
}

// MediaCache stores resolved media per query so repeated asks skip the
// provider round-trips. Lookup misses and store failures are non-fatal.
type MediaCache interface {
	Get(ctx context.Context, kind MediaKind, query string) (*MediaResult, bool)
	Set(ctx context.Context, query string, result MediaResult)
}

// SlotInputProvider supplies, per turn, an optional raw value for a
// requested slot. An empty string means "use the declared default".
type SlotInputProvider interface {
	SlotValue(intent Intent, spec SlotSpec) string
}

// SlotInputFunc adapts a plain function to SlotInputProvider.
type SlotInputFunc func(intent Intent, spec SlotSpec) string

func (f SlotInputFunc) SlotValue(intent Intent, spec SlotSpec) string {
	return f(intent, spec)
}

// NoSlotInput yields no values, so collection falls back to defaults for
// every slot. Enables fully non-interactive use.
var NoSlotInput SlotInputProvider = SlotInputFunc(func(Intent, SlotSpec) string { return "" })

// SpeechSynthesizer renders reply text to audio bytes. Optional enrichment;
// failures drop the audio, never the turn.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
