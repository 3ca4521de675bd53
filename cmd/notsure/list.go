package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/notsure/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scenes and probes",
	Long: `Shows every scene (built-in and from the scene directory) and every
registered probe.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	scenes, err := resolveScenes(nil)
	if err != nil {
		return err
	}

	fmt.Println("Scenes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range scenes {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %-6s  %-8s  %s\n", maxIDLen, "ID", "Bodies", "Segments", "Title")
	fmt.Printf("  %-*s  %-6s  %-8s  %s\n", maxIDLen, "--", "------", "--------", "-----")
	for _, s := range scenes {
		source := ""
		if s.FilePath != "" {
			source = " (" + s.FilePath + ")"
		}
		fmt.Printf("  %-*s  %-6d  %-8d  %s%s\n", maxIDLen, s.ID, len(s.BodySpecs), len(s.SegmentSpecs), s.Title(), source)
	}

	probes := registry.List()
	maxIDLen = 2
	for _, p := range probes {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Println()
	fmt.Println("Probes:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, p := range probes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'notsure check <scene>' or 'notsure view <scene>'.")
	return nil
}
