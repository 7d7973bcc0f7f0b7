package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"pike/config"
	"pike/scripts"
)

// editor returns the user's preferred editor
func editor() string {
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "nano"
}

// editConfig opens the config file in the user's editor
func editConfig(dir string) error {
	// Materialize defaults so there is something to edit
	if _, err := config.Load(dir); err != nil {
		return err
	}

	cmd := exec.Command(editor(), config.Path(dir))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// resetConfig restores the config and system prompt defaults
func resetConfig(dir string) error {
	if err := config.Reset(dir); err != nil {
		return err
	}
	fmt.Println("Config and system prompt reset to defaults (API key preserved)")
	return nil
}

// listScripts prints the stored scripts as a table, newest first
func listScripts(dir string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	records, err := scripts.NewStore(cfg.ScriptsDir()).List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		colorYellow.Println("No scripts found")
		return nil
	}

	fmt.Println(tableHeaderStyle.Render(fmt.Sprintf("%-30s %10s  %s", "NAME", "SIZE", "MODIFIED")))
	for _, record := range records {
		fmt.Printf("%s %10d  %s\n",
			tableNameStyle.Render(fmt.Sprintf("%-30s", record.Name)),
			record.Size,
			tableMetaStyle.Render(record.Modified.Format("2006-01-02 15:04")),
		)
	}
	return nil
}

// deleteScript removes a stored script; a bare name gets the .py extension
func deleteScript(dir, name string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	if !strings.Contains(name, ".") {
		name += ".py"
	}

	if err := scripts.NewStore(cfg.ScriptsDir()).Delete(name); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", name)
	return nil
}
