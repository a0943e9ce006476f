package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/angry-pixel/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level interactively",
	Long: `Show the level picker in the terminal. The chosen level is played in the
terminal display; quitting the game returns to the picker.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play the level
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTTY
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	// Menu loop
	for {
		width, height := 80, 24 // Defaults
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}

		index, ok, err := tui.RunMenu(cat, width, height)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if err := play("tui", index); err != nil {
			return err
		}
	}
}
