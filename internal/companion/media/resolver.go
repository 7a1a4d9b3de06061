package media

import (
	"context"

	"github.com/kritika-companion/server/internal/companion/model"
	logx "github.com/kritika-companion/server/pkg/logger"
)

// Resolver walks providers in priority order and short-circuits on the first
// acceptable hit. Provider order is fixed at construction: video before
// image unless the query constrains the kind.
type Resolver struct {
	providers []model.MediaProvider
	cache     model.MediaCache
}

func NewResolver(cache model.MediaCache, providers ...model.MediaProvider) *Resolver {
	return &Resolver{providers: providers, cache: cache}
}

// Resolve returns the best matching media for the query, or nil when no
// provider has an acceptable candidate. Absence is a normal outcome, not an
// error.
func (r *Resolver) Resolve(ctx context.Context, query model.MediaQuery) *model.MediaResult {
	for _, provider := range r.providers {
		if !wantsKind(query.Preferred, provider.Kind()) {
			continue
		}

		if r.cache != nil {
			if hit, ok := r.cache.Get(ctx, provider.Kind(), query.Text); ok {
				return hit
			}
		}

		candidates := provider.Search(ctx, query.Text)
		if len(candidates) == 0 {
			continue
		}

		top := Rank(query.Text, candidates)[0]
		if top.Score < provider.MinScore() {
			logx.Debug().
				Str("kind", string(provider.Kind())).
				Int("score", top.Score).
				Int("min_score", provider.MinScore()).
				Msg("top candidate below provider threshold, skipping")
			continue
		}

		result := &model.MediaResult{Kind: provider.Kind(), URL: top.URL}
		if r.cache != nil {
			r.cache.Set(ctx, query.Text, *result)
		}
		return result
	}
	return nil
}

func wantsKind(preferred, kind model.MediaKind) bool {
	return preferred == "" || preferred == model.MediaAny || preferred == kind
}
