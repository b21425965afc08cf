// Package dispatcher runs the interactive menu loop of the file manager.
package dispatcher

import (
	"context"
	"errors"

	"github.com/ideamans/go-l10n"

	"github.com/user/filemanager/pkg/operations"
	"github.com/user/filemanager/pkg/ports"
)

// Outcome is how one dispatched operation ended.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeRejected  Outcome = "rejected"
	OutcomeFailed    Outcome = "failed"
)

// Recorder receives one call per dispatched operation.
type Recorder interface {
	Record(operation string, outcome Outcome, message string)
}

// Dispatcher shows the menu, reads a choice and runs the matching handler
// until the user exits or the input ends.
type Dispatcher struct {
	console  ports.Console
	handlers []operations.Handler
	logger   ports.Logger
	recorder Recorder
}

// New creates a Dispatcher. handlers[i] serves menu choice i+1; the choice
// after the last handler exits.
func New(console ports.Console, handlers []operations.Handler, logger ports.Logger) *Dispatcher {
	return &Dispatcher{
		console:  console,
		handlers: handlers,
		logger:   logger.WithComponent("dispatcher"),
	}
}

// WithRecorder sets a Recorder that sees every dispatched operation.
func (d *Dispatcher) WithRecorder(r Recorder) *Dispatcher {
	d.recorder = r
	return d
}

// Run loops until the exit choice is made, which returns nil. When the
// console runs out of input it returns ports.ErrInputClosed; when ctx is
// cancelled it returns ctx.Err() before showing the next menu.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.console.Println(l10n.T("Welcome to the File Manager!"))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.showMenu()
		choice, err := d.readChoice()
		if err != nil {
			return err
		}

		if choice == d.exitChoice() {
			d.console.Println(l10n.T("Thank you for using File Manager. Goodbye!"))
			return nil
		}

		if err := d.dispatch(ctx, d.handlers[choice-1]); err != nil {
			return err
		}
	}
}

// dispatch runs one handler. Only a closed console is returned; every other
// handler error is reported and the loop goes on.
func (d *Dispatcher) dispatch(ctx context.Context, h operations.Handler) error {
	title := h.Title()
	d.logger.Debug("Dispatching %s", title)

	res, err := h.Handle(ctx, d.console)
	if errors.Is(err, ports.ErrInputClosed) {
		return err
	}
	if err != nil {
		d.logger.Error("%s failed: %s", title, err)
		d.console.Println(l10n.F("An error occurred: %s", err))
		d.console.Println(l10n.T("Please try again or choose a different operation."))
		d.record(title, OutcomeFailed, err.Error())
		return nil
	}

	d.console.Println(res.Message)
	if res.Status == operations.StatusRejected {
		d.logger.Info("%s rejected: %s", title, res.Message)
		d.record(title, OutcomeRejected, res.Message)
		return nil
	}
	d.record(title, OutcomeCompleted, res.Message)
	return nil
}

func (d *Dispatcher) record(operation string, outcome Outcome, message string) {
	if d.recorder != nil {
		d.recorder.Record(operation, outcome, message)
	}
}
