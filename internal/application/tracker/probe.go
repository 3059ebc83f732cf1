package tracker

import (
	"math/rand"
	"time"

	"github.com/dthphuong/copilot-status/internal/core/model"
)

// ActivityProbe produces usage events for sessions that cannot be read
// from disk, such as an assistant process that has not flushed its
// transcript yet. The tracker treats probe output exactly like events
// derived from session files.
type ActivityProbe interface {
	// Probe returns zero or more events observed since the last call.
	Probe(now time.Time) []model.UsageEvent
}

// SimulationProbe fabricates plausible usage events at a configurable
// probability per poll. It exists for demos and for exercising the
// tracker pipeline on machines with no real session data.
type SimulationProbe struct {
	// Chance is the probability (0..1) of emitting an event per Probe call.
	Chance float64

	rng *rand.Rand
}

// NewSimulationProbe builds a probe seeded from the current time.
func NewSimulationProbe(chance float64) *SimulationProbe {
	return &SimulationProbe{
		Chance: chance,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var simulatedCommands = []string{"explain", "suggest", "fix", "test", "doc"}

// Probe emits at most one synthetic event per call.
func (p *SimulationProbe) Probe(now time.Time) []model.UsageEvent {
	if p.rng.Float64() >= p.Chance {
		return nil
	}

	promptTokens := 20 + p.rng.Intn(180)
	completionTokens := 50 + p.rng.Intn(450)
	total := promptTokens + completionTokens

	event := model.UsageEvent{
		Timestamp:        now.Format(time.RFC3339),
		Model:            model.ModelLabel,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      total,
		Cost:             float64(total) * model.CostPerToken,
		SessionID:        "simulated",
		Command:          simulatedCommands[p.rng.Intn(len(simulatedCommands))],
		Duration:         int64(1 + p.rng.Intn(120)),
	}

	return []model.UsageEvent{event}
}
