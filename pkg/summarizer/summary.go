// Package summarizer builds and writes the report of an interactive session.
package summarizer

import (
	"time"

	"github.com/user/filemanager/pkg/dispatcher"
)

// Summary contains everything recorded during one session.
type Summary struct {
	// Metadata
	GeneratedAt time.Time
	SessionID   string
	StartedAt   time.Time
	EndedAt     time.Time

	// Operations in the order they were dispatched.
	Operations []OperationRecord
}

// OperationRecord is one dispatched menu operation.
type OperationRecord struct {
	At        time.Time
	Operation string
	Outcome   dispatcher.Outcome
	Message   string
}

// Totals counts the operations per outcome.
type Totals struct {
	Completed int
	Rejected  int
	Failed    int
}

// Totals returns the per-outcome counts.
func (s *Summary) Totals() Totals {
	var t Totals
	for _, op := range s.Operations {
		switch op.Outcome {
		case dispatcher.OutcomeCompleted:
			t.Completed++
		case dispatcher.OutcomeRejected:
			t.Rejected++
		case dispatcher.OutcomeFailed:
			t.Failed++
		}
	}
	return t
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSession sets the session id and its start time.
func (b *Builder) WithSession(id string, startedAt time.Time) *Builder {
	b.summary.SessionID = id
	b.summary.StartedAt = startedAt
	return b
}

// WithEnd sets when the session ended.
func (b *Builder) WithEnd(endedAt time.Time) *Builder {
	b.summary.EndedAt = endedAt
	return b
}

// WithOperations sets the recorded operations.
func (b *Builder) WithOperations(ops []OperationRecord) *Builder {
	b.summary.Operations = ops
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
