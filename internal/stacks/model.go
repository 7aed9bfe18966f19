package stacks

import (
	"time"

	"stackpilot-backend/internal/assessment"
	"stackpilot-backend/internal/stacks/engine"
)

// StackPlan is a persisted pipeline run: the assessment that produced it, the
// scenarios it yielded, and the fingerprint runs are cached on.
type StackPlan struct {
	ID          string           `json:"id"`
	Fingerprint string           `json:"fingerprint"`
	Assessment  assessment.Input `json:"assessment"`
	Result      engine.Result    `json:"result"`
	CreatedAt   time.Time        `json:"createdAt"`
}
