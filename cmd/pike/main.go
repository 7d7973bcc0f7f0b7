package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"pike/config"
)

func main() {
	// SIGINT cancels the in-flight model call or child process; the
	// components translate it into a local non-fatal return.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir := config.DefaultDir()
	args := os.Args[1:]

	var err error
	if len(args) == 0 {
		err = ask(ctx, dir, "")
	} else {
		switch args[0] {
		case "config":
			err = editConfig(dir)
		case "reset":
			err = resetConfig(dir)
		case "scripts":
			err = listScripts(dir)
		case "delete":
			if len(args) != 2 {
				err = fmt.Errorf("usage: pike delete NAME")
			} else {
				err = deleteScript(dir, args[1])
			}
		case "run":
			err = runStored(ctx, dir)
		case "help", "-h", "--help":
			printUsage()
		default:
			err = ask(ctx, dir, strings.Join(args, " "))
		}
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`pike - natural-language command assistant

Usage:
  pike <request...>   Ask in free text; pike answers, runs a command,
                      or saves a script
  pike                Prompt for a request interactively
  pike run            Pick a saved script and run it
  pike scripts        List saved scripts
  pike delete NAME    Delete a saved script (.py assumed if no extension)
  pike config         Open the configuration in your editor
  pike reset          Restore config and system prompt defaults
                      (API key preserved)

Files live in ~/.pike/: config.yaml, system_prompt.md, scripts/.
`)
}
