package intent

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"

	"github.com/kritika-companion/server/internal/companion/model"
)

// cueWords trigger a media lookup for the turn. The scan is independent from
// intent classification; a turn can carry both a flow and a media fetch.
var cueWords = []string{"show", "video", "gif", "picture"}

// CueDetector scans user text for media-request cues with an Aho-Corasick
// automaton built once over the cue vocabulary.
type CueDetector struct {
	matcher *goahocorasick.Machine
}

func NewCueDetector() (*CueDetector, error) {
	patterns := make([][]rune, len(cueWords))
	for i, w := range cueWords {
		patterns[i] = []rune(w)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &CueDetector{matcher: m}, nil
}

// Detect reports whether the text asks for media and which kind it prefers:
// a "video" cue narrows to video, "gif" or "picture" to image, and a bare
// "show" leaves the kind open so resolution tries video first, then image.
func (d *CueDetector) Detect(text string) (model.MediaKind, bool) {
	lowered := []rune(strings.ToLower(text))
	terms := d.matcher.MultiPatternSearch(lowered, false)
	if len(terms) == 0 {
		return "", false
	}

	matched := make(map[string]bool, len(terms))
	for _, term := range terms {
		matched[string(term.Word)] = true
	}

	switch {
	case matched["video"]:
		return model.MediaVideo, true
	case matched["gif"] || matched["picture"]:
		return model.MediaImage, true
	default:
		return model.MediaAny, true
	}
}
