package domain

import "time"

// TraceStep records one action taken while producing a Result.
type TraceStep struct {
	Agent     string    `json:"agent,omitempty"`
	Action    string    `json:"action"`
	Result    any       `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

type ResultMetadata struct {
	Timestamp      time.Time `json:"timestamp"`
	ProcessingTime int64     `json:"processingTime"`
	Agent          string    `json:"agent"`
}

type Trace struct {
	Steps []TraceStep `json:"steps"`
}

// Result is the uniform envelope every pipeline step returns.
type Result[T any] struct {
	Success  bool           `json:"success"`
	Data     T              `json:"data"`
	Metadata ResultMetadata `json:"metadata"`
	Trace    Trace          `json:"trace"`
}

// Recorder collects trace steps for a single agent and wraps its output.
type Recorder struct {
	agent string
	start time.Time
	now   func() time.Time
	steps []TraceStep
}

func NewRecorder(agent string, now func() time.Time) *Recorder {
	if now == nil {
		now = time.Now
	}
	return &Recorder{agent: agent, start: now(), now: now}
}

func (r *Recorder) Step(action string, result any) {
	r.steps = append(r.steps, TraceStep{
		Agent:     r.agent,
		Action:    action,
		Result:    result,
		Timestamp: r.now(),
	})
}

// Append merges steps recorded elsewhere, preserving their order.
func (r *Recorder) Append(steps ...TraceStep) {
	r.steps = append(r.steps, steps...)
}

func (r *Recorder) Steps() []TraceStep {
	out := make([]TraceStep, len(r.steps))
	copy(out, r.steps)
	return out
}

// Wrap builds the result envelope.
func Wrap[T any](r *Recorder, success bool, data T) Result[T] {
	end := r.now()
	return Result[T]{
		Success: success,
		Data:    data,
		Metadata: ResultMetadata{
			Timestamp:      end,
			ProcessingTime: end.Sub(r.start).Milliseconds(),
			Agent:          r.agent,
		},
		Trace: Trace{Steps: r.Steps()},
	}
}
