package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long:  `Shows every level with its pixel budget and target count.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	levels := cat.Levels()
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	fmt.Printf("  %2s  %-*s  %6s  %7s\n", "#", maxNameLen, "Name", "Pixels", "Targets")
	fmt.Printf("  %2s  %-*s  %6s  %7s\n", "--", maxNameLen, "----", "------", "-------")

	for i, l := range levels {
		fmt.Printf("  %2d  %-*s  %6d  %7d\n", i+1, maxNameLen, l.Name, l.Pixels, l.Targets())
	}

	fmt.Println()
	fmt.Println("Run 'angrypixel play --level <#>' to play a level.")
	return nil
}
