// Package dispatch routes a classified model reply to its action: display
// text, run a shell command, or persist and optionally run a script.
package dispatch

import (
	"context"
	"fmt"

	"pike/reply"
	"pike/runner"
	"pike/scripts"
)

// OutcomeKind identifies the terminal state of one dispatch
type OutcomeKind int

const (
	Displayed       OutcomeKind = iota // text was shown, nothing executed
	CommandExecuted                    // shell command ran
	ScriptSaved                        // script persisted, possibly also run
)

// Outcome reports what a dispatch did. Result is set for CommandExecuted,
// and for ScriptSaved when the user chose to run the saved script.
type Outcome struct {
	Kind   OutcomeKind
	Record *scripts.Record
	Result *runner.Result
}

// PersistError indicates the script could not be saved. Execution is never
// attempted after a persist failure.
type PersistError struct {
	Name string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("saving script %q: %v", e.Name, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// Store is the subset of the script store the dispatcher needs
type Store interface {
	Put(name, body string) (*scripts.Record, error)
}

// Runner executes commands and script files
type Runner interface {
	Run(ctx context.Context, spec runner.Spec) (*runner.Result, error)
}

// Dispatcher routes parsed replies. Display, Confirm and Announce are the
// terminal front end's collaborators: Display shows a text answer, Confirm
// asks whether to run a freshly saved script, Announce narrates side
// effects (command about to run, script saved) in order. Any of them may be
// nil.
type Dispatcher struct {
	Store       Store
	Runner      Runner
	Interpreter string // interpreter for saved scripts
	Display     func(body string) error
	Confirm     func(prompt string) bool
	Announce    func(line string)
}

// Dispatch routes one classified reply. Calls are independent; the
// dispatcher holds no state between them.
func (d *Dispatcher) Dispatch(ctx context.Context, resp *reply.Response) (*Outcome, error) {
	switch resp.Kind {
	case reply.KindText:
		if d.Display != nil {
			if err := d.Display(resp.Body); err != nil {
				return nil, err
			}
		}
		return &Outcome{Kind: Displayed}, nil

	case reply.KindCommand:
		d.announce("Executing: " + resp.Command)
		result, err := d.Runner.Run(ctx, runner.ShellCommand(resp.Command))
		if err != nil {
			return nil, err
		}
		return &Outcome{Kind: CommandExecuted, Result: result}, nil

	case reply.KindScript:
		record, err := d.Store.Put(resp.Name, resp.Body)
		if err != nil {
			return nil, &PersistError{Name: resp.Name, Err: err}
		}
		d.announce("Saved script to " + record.Path)

		outcome := &Outcome{Kind: ScriptSaved, Record: record}
		if d.Confirm != nil && d.Confirm("Run it now?") {
			result, err := d.Runner.Run(ctx, runner.ScriptFile(d.Interpreter, record.Path))
			if err != nil {
				return nil, err
			}
			outcome.Result = result
		}
		return outcome, nil

	default:
		return nil, fmt.Errorf("unknown reply kind: %d", resp.Kind)
	}
}

func (d *Dispatcher) announce(line string) {
	if d.Announce != nil {
		d.Announce(line)
	}
}
