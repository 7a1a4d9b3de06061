package model

// Intent is the classified conversational domain for a turn. The set is
// closed; IntentNone is a valid classification outcome, not an error.
type Intent string

const (
	IntentTechAdvisor Intent = "tech_advisor"
	IntentClothing    Intent = "clothing"
	IntentBudget      Intent = "budget"
	IntentAstrology   Intent = "astrology"
	IntentRecipe      Intent = "recipe"
	IntentLifeGuide   Intent = "life_guide"
	IntentFinance     Intent = "finance"
	IntentNone        Intent = "none"
)

// IsNone reports whether the turn carries no structured flow.
func (i Intent) IsNone() bool {
	return i == IntentNone || i == ""
}

// SlotSpec describes one named parameter of a flow.
type SlotSpec struct {
	Name    string
	Prompt  string
	Default string
}

// CollectedParameters maps slot name to the value used for this turn,
// either user-supplied or the slot's declared default. Collection is total:
// every slot of the active intent has an entry.
type CollectedParameters map[string]string

// MediaKind selects a media provider family.
type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaImage MediaKind = "image"
	MediaAny   MediaKind = "any"
)

// MediaQuery is the input to media resolution.
type MediaQuery struct {
	Text      string
	Preferred MediaKind
}

// MediaCandidate is one raw search hit before ranking. Ephemeral, never
// persisted.
type MediaCandidate struct {
	Kind        MediaKind
	URL         string
	Title       string
	Description string
	Score       int
}

// MediaResult is the single candidate chosen for a turn.
type MediaResult struct {
	Kind MediaKind `json:"kind"`
	URL  string    `json:"url"`
}

// TurnInput is the raw user text for one conversation turn.
type TurnInput struct {
	ConversationID string
	Text           string
}

// TurnResult is the complete output of one turn. Media and Audio are
// optional enrichments; absence is a normal outcome.
type TurnResult struct {
	TurnID string
	Intent Intent
	Text   string
	Media  *MediaResult
	Audio  []byte
}
