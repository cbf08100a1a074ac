package pipeline

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"
)

// Step is one named unit of the boot sequence
type Step struct {
	Name string
	Run  func(ctx context.Context) (interface{}, error)
}

// StepResult reports one executed step
type StepResult struct {
	OK         bool        `json:"ok"`
	DurationMs int64       `json:"duration_ms"`
	Value      interface{} `json:"value,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// BootResult reports a full boot sequence run
type BootResult struct {
	DurationMs int64                 `json:"duration_ms"`
	Steps      map[string]StepResult `json:"steps"`
}

// Failed reports whether any step of the sequence failed
func (r BootResult) Failed() bool {
	for _, step := range r.Steps {
		if !step.OK {
			return true
		}
	}
	return false
}

// Boot runs a fixed ordered list of steps, capturing each step's error so
// later, independent steps still execute. A broken publish integration must
// not prevent ingestion from recording new items.
type Boot struct {
	steps []Step
}

// NewBoot creates a boot sequence from the given ordered steps
func NewBoot(steps ...Step) *Boot {
	return &Boot{steps: steps}
}

// Run executes all steps strictly in order and returns one structured report
func (b *Boot) Run(ctx context.Context) BootResult {
	start := time.Now()
	result := BootResult{Steps: make(map[string]StepResult, len(b.steps))}

	for _, step := range b.steps {
		stepStart := time.Now()
		lgr.Printf("[INFO] boot step %q started", step.Name)

		value, err := step.Run(ctx)
		stepResult := StepResult{
			OK:         err == nil,
			DurationMs: time.Since(stepStart).Milliseconds(),
			Value:      value,
		}
		if err != nil {
			stepResult.Error = err.Error()
			lgr.Printf("[WARN] boot step %q failed in %v: %v", step.Name, time.Since(stepStart), err)
		} else {
			lgr.Printf("[INFO] boot step %q completed in %v", step.Name, time.Since(stepStart))
		}
		result.Steps[step.Name] = stepResult
	}

	result.DurationMs = time.Since(start).Milliseconds()
	lgr.Printf("[INFO] boot sequence completed in %v, %d steps", time.Since(start), len(b.steps))
	return result
}
