package flow

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kritika-companion/server/internal/companion/model"
	logx "github.com/kritika-companion/server/pkg/logger"
)

// DegradedFlowReply is returned whenever the live flow backend fails. Flow
// backend failures must never abort the conversation turn.
const DegradedFlowReply = "I encountered an issue with my specialized advice system. Let me give you a general response instead."

// Executor dispatches collected parameters to the flow backend, or
// synthesizes an offline response in simulated mode.
type Executor struct {
	backend model.FlowBackend
	flowID  string
}

func NewExecutor(backend model.FlowBackend, flowID string) *Executor {
	return &Executor{backend: backend, flowID: flowID}
}

// Execute runs the flow for an intent. In simulated mode (or without a
// backend) it produces a deterministic echo of the parameters with no
// external call. In live mode any backend error is absorbed into the fixed
// degraded reply.
func (e *Executor) Execute(ctx context.Context, intent model.Intent, params model.CollectedParameters, mode model.FlowMode) string {
	if mode == model.ModeSimulated || e.backend == nil {
		return Simulate(intent, params)
	}

	payload := buildPayload(intent, params)
	response, err := e.backend.Execute(ctx, e.flowID, payload)
	if err != nil {
		logx.Error().Err(err).
			Str("intent", string(intent)).
			Str("flow_id", e.flowID).
			Msg("flow backend failed, degrading")
		return DegradedFlowReply
	}
	return response
}

// buildPayload shapes the request body per intent: single-slot intents like
// tech_advisor submit one scalar field, everything else the full mapping.
func buildPayload(intent model.Intent, params model.CollectedParameters) map[string]any {
	if intent == model.IntentTechAdvisor {
		return map[string]any{"question": params["question"]}
	}
	return map[string]any{"input": map[string]string(params)}
}

// Simulate synthesizes the offline flow response. Parameters are enumerated
// in schema order so identical inputs produce identical text.
func Simulate(intent model.Intent, params model.CollectedParameters) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Simulated %s response] Based on your inputs:\n", intent)
	for _, name := range slotOrder(intent, params) {
		fmt.Fprintf(&b, "- %s: %s\n", name, params[name])
	}
	b.WriteString("\nHere's my advice: ...")
	return b.String()
}

func slotOrder(intent model.Intent, params model.CollectedParameters) []string {
	slots, err := Slots(intent)
	if err != nil {
		// Unregistered intent: fall back to sorted keys to stay deterministic.
		names := make([]string, 0, len(params))
		for name := range params {
			names = append(names, name)
		}
		sort.Strings(names)
		return names
	}
	names := make([]string, 0, len(slots))
	for _, spec := range slots {
		names = append(names, spec.Name)
	}
	return names
}
