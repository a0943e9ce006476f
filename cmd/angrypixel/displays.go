package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/angry-pixel/internal/registry"
)

var displaysCmd = &cobra.Command{
	Use:   "displays",
	Short: "List display drivers",
	Long:  `Shows the display drivers accepted by 'play --display'.`,
	Args:  cobra.NoArgs,
	Run:   runDisplays,
}

func runDisplays(_ *cobra.Command, _ []string) {
	displays := registry.List()

	if len(displays) == 0 {
		fmt.Println("No displays available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, d := range displays {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, d := range displays {
		fmt.Printf("  %-*s  %s\n", maxIDLen, d.ID, d.Title)
	}
}
