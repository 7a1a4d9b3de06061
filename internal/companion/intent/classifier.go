// Package intent maps raw user text to a conversational domain.
package intent

import (
	"regexp"
	"strings"

	"github.com/kritika-companion/server/internal/companion/model"
)

type registryEntry struct {
	intent  model.Intent
	pattern *regexp.Regexp
}

// registry order is part of the observable contract: matching stops at the
// first hit, so text mentioning several domains resolves to whichever intent
// is declared earlier here.
var registry = []registryEntry{
	{model.IntentTechAdvisor, regexp.MustCompile(`\b(computer|laptop|phone|software|tech|technology|programming|code|device)\b`)},
	{model.IntentClothing, regexp.MustCompile(`\b(clothes|wear|outfit|fashion|dress|style|wardrobe)\b`)},
	{model.IntentBudget, regexp.MustCompile(`\b(budget|money|savings|expenses|income|financial planning)\b`)},
	{model.IntentAstrology, regexp.MustCompile(`\b(horoscope|zodiac|star sign|astrology|birth chart|my day)\b`)},
	{model.IntentRecipe, regexp.MustCompile(`\b(recipe|cook|food|meal|dish|cooking)\b`)},
	{model.IntentLifeGuide, regexp.MustCompile(`\b(career|education|study|college|university|profession|job|future)\b`)},
	{model.IntentFinance, regexp.MustCompile(`\b(invest|stock|mutual fund|cryptocurrency|trading|financial advice)\b`)},
}

// Classify maps free text to a domain intent. Classification is total and
// deterministic: unmatched text yields IntentNone, never an error.
func Classify(text string) model.Intent {
	lowered := strings.ToLower(text)
	for _, entry := range registry {
		if entry.pattern.MatchString(lowered) {
			return entry.intent
		}
	}
	return model.IntentNone
}

// Intents returns the closed intent set in registry order, without IntentNone.
func Intents() []model.Intent {
	out := make([]model.Intent, 0, len(registry))
	for _, entry := range registry {
		out = append(out, entry.intent)
	}
	return out
}
