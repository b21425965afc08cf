package summarizer

import (
	"sync"
	"time"

	"github.com/user/filemanager/pkg/dispatcher"
)

// Recorder collects operations from the dispatcher.
type Recorder struct {
	mu  sync.Mutex
	now func() time.Time
	ops []OperationRecord
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

// Record implements dispatcher.Recorder.
func (r *Recorder) Record(operation string, outcome dispatcher.Outcome, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, OperationRecord{
		At:        r.now(),
		Operation: operation,
		Outcome:   outcome,
		Message:   message,
	})
}

// Operations returns a copy of what was recorded so far.
func (r *Recorder) Operations() []OperationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]OperationRecord(nil), r.ops...)
}

var _ dispatcher.Recorder = (*Recorder)(nil)
