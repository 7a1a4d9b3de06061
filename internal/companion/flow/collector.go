package flow

import (
	"strings"

	"github.com/kritika-companion/server/internal/companion/model"
	logx "github.com/kritika-companion/server/pkg/logger"
)

// Collect gathers one value per slot of the intent. A non-empty value from
// the input provider wins; otherwise the slot's declared default is
// substituted, so collection always covers every slot and degrades
// gracefully to fully non-interactive use.
func Collect(intent model.Intent, input model.SlotInputProvider) (model.CollectedParameters, error) {
	slots, err := Slots(intent)
	if err != nil {
		return nil, err
	}
	if input == nil {
		input = model.NoSlotInput
	}

	params := make(model.CollectedParameters, len(slots))
	for _, spec := range slots {
		value := strings.TrimSpace(input.SlotValue(intent, spec))
		if value == "" {
			logx.Debug().
				Str("intent", string(intent)).
				Str("slot", spec.Name).
				Str("default", spec.Default).
				Msg("slot unfilled, using default")
			value = spec.Default
		}
		params[spec.Name] = value
	}
	return params, nil
}
