package metrics

import (
	"sync"
)

// Workflow type labels used by the scheduled-workflow counters.
const (
	WorkflowSolver            = "solver"
	WorkflowRevSolver         = "revsolver"
	WorkflowSecurityIndicator = "security-indicator"
)

// Sink receives per-dispatch counters. Purely observational; nothing in
// the decision engine reads it back.
type Sink interface {
	IncScheduledWorkflows(messageType, workflowType string, n int)
	IncSuccess(messageType string)
	IncException(messageType string)
}

type workflowKey struct {
	MessageType  string
	WorkflowType string
}

// Registry is an in-process Sink. Safe for concurrent use.
type Registry struct {
	mu         sync.Mutex
	scheduled  map[workflowKey]int
	successes  map[string]int
	exceptions map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		scheduled:  make(map[workflowKey]int),
		successes:  make(map[string]int),
		exceptions: make(map[string]int),
	}
}

func (r *Registry) IncScheduledWorkflows(messageType, workflowType string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled[workflowKey{messageType, workflowType}] += n
}

func (r *Registry) IncSuccess(messageType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes[messageType]++
}

func (r *Registry) IncException(messageType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exceptions[messageType]++
}

// Snapshot flattens the counters for the metrics endpoint.
type Snapshot struct {
	ScheduledWorkflows []WorkflowCount `json:"scheduled_workflows"`
	Successes          map[string]int  `json:"successes"`
	Exceptions         map[string]int  `json:"exceptions"`
}

type WorkflowCount struct {
	MessageType  string `json:"message_type"`
	WorkflowType string `json:"workflow_type"`
	Count        int    `json:"count"`
}

func (r *Registry) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		Successes:  make(map[string]int, len(r.successes)),
		Exceptions: make(map[string]int, len(r.exceptions)),
	}
	for k, v := range r.scheduled {
		snap.ScheduledWorkflows = append(snap.ScheduledWorkflows, WorkflowCount{
			MessageType:  k.MessageType,
			WorkflowType: k.WorkflowType,
			Count:        v,
		})
	}
	for k, v := range r.successes {
		snap.Successes[k] = v
	}
	for k, v := range r.exceptions {
		snap.Exceptions[k] = v
	}
	return snap
}

// NopSink discards everything; useful in tests.
type NopSink struct{}

func (NopSink) IncScheduledWorkflows(string, string, int) {}
func (NopSink) IncSuccess(string)                         {}
func (NopSink) IncException(string)                       {}
