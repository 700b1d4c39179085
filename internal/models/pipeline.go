package models

import "time"

// PipelineState identifies where a run is in its lifecycle. Runs move
// strictly forward through the success states; any stage failure jumps
// directly to StateFailed, which is terminal.
type PipelineState string

const (
	StateInit           PipelineState = "INIT"
	StateVersionChecked PipelineState = "VERSION_CHECKED"
	StateLoaded         PipelineState = "LOADED"
	StateValidated      PipelineState = "VALIDATED"
	StateCoerced        PipelineState = "COERCED"
	StateAggregated     PipelineState = "AGGREGATED"
	StateWritten        PipelineState = "WRITTEN"
	StateDone           PipelineState = "DONE"
	StateFailed         PipelineState = "FAILED"
)

// successOrder is the forward path of a healthy run.
var successOrder = []PipelineState{
	StateInit,
	StateVersionChecked,
	StateLoaded,
	StateValidated,
	StateCoerced,
	StateAggregated,
	StateWritten,
	StateDone,
}

// IsTerminal reports whether the state ends a run.
func (s PipelineState) IsTerminal() bool {
	return s == StateDone || s == StateFailed
}

// Next returns the state that follows s on the success path. Terminal states
// have no successor and return StateFailed to make misuse observable.
func (s PipelineState) Next() PipelineState {
	for i, state := range successOrder {
		if state == s && i+1 < len(successOrder) {
			return successOrder[i+1]
		}
	}
	return StateFailed
}

// AllowedTransition reports whether a run may move from one state to another.
// Every non-terminal state may advance one step or fail; nothing leaves a
// terminal state.
func AllowedTransition(from, to PipelineState) bool {
	if from.IsTerminal() {
		return false
	}
	if to == StateFailed {
		return true
	}
	return from.Next() == to
}

// StageTiming records how long a single pipeline stage took.
type StageTiming struct {
	Stage    string        `json:"stage"`
	Duration time.Duration `json:"duration"`
}

// RunResult describes the outcome of one pipeline invocation.
type RunResult struct {
	RunID         string        `json:"run_id"`
	State         PipelineState `json:"state"`
	RowCount      int           `json:"row_count"`
	CategoryCount int           `json:"category_count"`
	FailedStage   string        `json:"failed_stage,omitempty"`
	Timings       []StageTiming `json:"timings"`
	Elapsed       time.Duration `json:"elapsed"`
}

// Succeeded reports whether the run reached StateDone.
func (r *RunResult) Succeeded() bool {
	return r != nil && r.State == StateDone
}
