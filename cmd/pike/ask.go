package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"pike/config"
	"pike/dispatch"
	"pike/llm"
	"pike/picker"
	"pike/reply"
	"pike/runner"
	"pike/scripts"
)

const scriptInterpreter = "python3"

// ask runs the main flow: free text in, exactly one action out
func ask(ctx context.Context, dir, request string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key not configured; run 'pike config' and set api_key")
	}

	if request == "" {
		request, err = readRequest()
		if err != nil {
			return err
		}
		if request == "" {
			fmt.Println("No input provided")
			return nil
		}
	}

	system, err := cfg.SystemPrompt()
	if err != nil {
		return err
	}

	client := llm.NewClient(cfg.APIKey, cfg.BaseURL, cfg.ModelParams())
	raw, err := client.Complete(ctx, system, request)
	if err != nil {
		return err
	}

	resp, err := reply.NewParser().Parse(raw)
	if err != nil {
		return err
	}

	d := dispatcher(cfg)
	outcome, err := d.Dispatch(ctx, resp)
	if err != nil {
		return err
	}

	reportResult(outcome.Result)
	return nil
}

// dispatcher wires the store, runner and terminal collaborators
func dispatcher(cfg *config.Config) dispatch.Dispatcher {
	return dispatch.Dispatcher{
		Store:       scripts.NewStore(cfg.ScriptsDir()),
		Runner:      runner.New(),
		Interpreter: scriptInterpreter,
		Display:     displayMarkdown,
		Confirm:     confirm,
		Announce:    func(line string) { fmt.Println(line) },
	}
}

// readRequest prompts for a single request line when no arguments were
// given. Interrupt or EOF at the prompt means no input, not an error.
func readRequest() (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          colorBold.Sprint("pike> "),
		HistoryFile:     os.ExpandEnv("$HOME/.pike_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "",
		HistoryLimit:    1000,
	})
	if err != nil {
		return "", err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		// readline.ErrInterrupt or io.EOF
		return "", nil
	}
	return strings.TrimSpace(line), nil
}

// runStored is the independent entry point: browse the store, pick a
// script, execute it
func runStored(ctx context.Context, dir string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	store := scripts.NewStore(cfg.ScriptsDir())
	records, err := store.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		colorYellow.Println("No scripts found")
		return nil
	}

	record, err := picker.Select(records)
	if err != nil {
		return err
	}
	if record == nil {
		// Cancelled
		return nil
	}

	fmt.Printf("Executing: %s %s\n", scriptInterpreter, record.Path)
	result, err := runner.New().Run(ctx, runner.ScriptFile(scriptInterpreter, record.Path))
	if err != nil {
		return err
	}
	reportResult(result)
	return nil
}
