package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// resolveTarget returns the directory to operate on: the positional
// argument when given, otherwise an interactive prompt on a TTY.
func resolveTarget(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no directory given (pass one as an argument)")
	}

	var dir string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Directory to organize").
			Placeholder(homeDir()).
			Value(&dir),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	if dir == "" {
		return "", fmt.Errorf("no directory given")
	}
	return dir, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
