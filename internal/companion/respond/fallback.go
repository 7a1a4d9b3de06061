package respond

import (
	"context"
	"math/rand"

	"github.com/kritika-companion/server/internal/companion/model"
	logx "github.com/kritika-companion/server/pkg/logger"
)

// DefaultFallbackPool holds the canned degraded replies used when the
// primary generator fails.
var DefaultFallbackPool = []string{
	"I seem to be having a moment! Could you rephrase that? 💫",
	"Oops, my circuits are a bit tangled! Mind trying again? ✨",
	"That's interesting, but could you say it differently? I want to make sure I understand! 🌟",
	"Let me adjust my thinking cap - could you reword that? 🎓",
	"My neural networks need a quick reset - one more time? 🔄",
}

// FallbackChain wraps the primary free-form generator with the fallback
// pool. The primary is invoked exactly once; retrying is the caller's
// choice, not this component's.
type FallbackChain struct {
	primary model.TextGenerator
	pool    []string
	pick    func(n int) int
}

func NewFallbackChain(primary model.TextGenerator, pool []string) *FallbackChain {
	if len(pool) == 0 {
		pool = DefaultFallbackPool
	}
	return &FallbackChain{
		primary: primary,
		pool:    pool,
		pick:    rand.Intn,
	}
}

// Respond returns the primary generator's text, or a random pick from the
// pool when the primary fails. The conversation always receives some reply.
func (f *FallbackChain) Respond(ctx context.Context, prompt string) string {
	if f.primary != nil {
		text, err := f.primary.Generate(ctx, prompt)
		if err == nil && text != "" {
			return text
		}
		logx.Warn().Err(err).Msg("primary generator failed, using fallback pool")
	}
	return f.pool[f.pick(len(f.pool))]
}
