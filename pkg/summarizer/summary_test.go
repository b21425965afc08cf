package summarizer

import (
	"testing"
	"time"

	"github.com/user/filemanager/pkg/dispatcher"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder(t *testing.T) {
	start := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(5 * time.Minute)
	ops := []OperationRecord{{At: start, Operation: "List Directory", Outcome: dispatcher.OutcomeCompleted}}

	summary := NewBuilder().
		WithSession("abc", start).
		WithEnd(end).
		WithOperations(ops).
		Build()

	if summary.SessionID != "abc" {
		t.Errorf("expected session 'abc', got '%s'", summary.SessionID)
	}
	if !summary.StartedAt.Equal(start) || !summary.EndedAt.Equal(end) {
		t.Errorf("unexpected session times %v - %v", summary.StartedAt, summary.EndedAt)
	}
	if len(summary.Operations) != 1 {
		t.Errorf("expected 1 operation, got %d", len(summary.Operations))
	}
}

func TestRecorder(t *testing.T) {
	at := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	r := NewRecorder()
	r.now = func() time.Time { return at }

	r.Record("Copy File", dispatcher.OutcomeCompleted, "File copied successfully.")
	r.Record("Move File", dispatcher.OutcomeRejected, "Destination path must include a filename.")
	r.Record("Delete File", dispatcher.OutcomeFailed, "permission denied")

	ops := r.Operations()
	if len(ops) != 3 {
		t.Fatalf("expected 3 operations, got %d", len(ops))
	}
	if ops[1].Operation != "Move File" || ops[1].Outcome != dispatcher.OutcomeRejected {
		t.Errorf("unexpected second record %+v", ops[1])
	}
	if !ops[2].At.Equal(at) {
		t.Errorf("expected time %v, got %v", at, ops[2].At)
	}

	totals := NewBuilder().WithOperations(ops).Build().Totals()
	if totals != (Totals{Completed: 1, Rejected: 1, Failed: 1}) {
		t.Errorf("unexpected totals %+v", totals)
	}

	// Operations returns a copy.
	ops[0].Operation = "changed"
	if r.Operations()[0].Operation != "Copy File" {
		t.Error("expected recorder state to be unaffected by caller changes")
	}
}
