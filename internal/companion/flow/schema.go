// Package flow implements the structured, slot-filling side of a turn:
// the per-intent slot schema, parameter collection with default
// substitution, and dispatch to the specialized flow backend.
package flow

import (
	"github.com/samber/lo"

	"github.com/kritika-companion/server/internal/companion/model"
	errx "github.com/kritika-companion/server/internal/core/error"
)

// slotTable is the static flow slot schema: one ordered slot list per
// intent. Loaded once, never mutated. Slot order only matters for
// presentation and for deterministic simulated output.
var slotTable = map[model.Intent][]model.SlotSpec{
	model.IntentTechAdvisor: {
		{Name: "question", Prompt: "What's your specific tech-related question?", Default: "Need advice on choosing a laptop"},
	},
	model.IntentClothing: {
		{Name: "age", Prompt: "What's your age? (Press Enter to skip)", Default: "25"},
		{Name: "height", Prompt: "What's your height? (e.g., 170cm, 5'8\") (Press Enter to skip)", Default: "170cm"},
		{Name: "skin_tone", Prompt: "What's your skin tone? (e.g., fair, medium, dark) (Press Enter to skip)", Default: "medium"},
		{Name: "color_preferences", Prompt: "What are your preferred colors? (separate by commas, Press Enter to skip)", Default: "blue, black, white"},
	},
	model.IntentBudget: {
		{Name: "savings_goal", Prompt: "What's your savings goal amount? (Press Enter to skip)", Default: "10000"},
		{Name: "fixed_expenses", Prompt: "What are your monthly fixed expenses? (Press Enter to skip)", Default: "3000"},
		{Name: "monthly_income", Prompt: "What's your monthly income? (Press Enter to skip)", Default: "5000"},
		{Name: "variable_expenses", Prompt: "What are your monthly variable expenses? (Press Enter to skip)", Default: "1000"},
	},
	model.IntentAstrology: {
		{Name: "question", Prompt: "What's your astrology-related question?", Default: "Tell me about my day"},
		{Name: "birth_details", Prompt: "What's your birth date and time? (YYYY-MM-DD HH:MM) (Press Enter to skip)", Default: "1990-01-01 12:00"},
	},
	model.IntentRecipe: {
		{Name: "remix_style", Prompt: "What style would you like? (e.g., healthy, spicy, vegetarian) (Press Enter to skip)", Default: "healthy"},
		{Name: "original_recipe", Prompt: "What recipe would you like to remix?", Default: "pasta with tomato sauce"},
	},
	model.IntentLifeGuide: {
		{Name: "goals", Prompt: "What are your career/life goals? (Press Enter to skip)", Default: "career growth"},
		{Name: "skills", Prompt: "What are your current skills? (Press Enter to skip)", Default: "communication, teamwork"},
		{Name: "timeline", Prompt: "What's your timeline for achieving these goals? (Press Enter to skip)", Default: "5 years"},
		{Name: "field_of_interest", Prompt: "What field are you interested in?", Default: "technology"},
		{Name: "current_qualification", Prompt: "What's your current qualification? (Press Enter to skip)", Default: "bachelor's degree"},
	},
	model.IntentFinance: {
		{Name: "user_query", Prompt: "What's your finance-related question?", Default: "How to start investing"},
	},
}

// Slots returns the ordered slot specs for an intent. An intent missing from
// the schema is a programming error, reported via errx.ErrUnknownIntent.
func Slots(intent model.Intent) ([]model.SlotSpec, error) {
	slots, ok := slotTable[intent]
	if !ok {
		return nil, errx.UnknownIntent(string(intent))
	}
	return slots, nil
}

// Defaults returns the declared default value per slot name for an intent.
func Defaults(intent model.Intent) (model.CollectedParameters, error) {
	slots, err := Slots(intent)
	if err != nil {
		return nil, err
	}
	return lo.SliceToMap(slots, func(s model.SlotSpec) (string, string) {
		return s.Name, s.Default
	}), nil
}
