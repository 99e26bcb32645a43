package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-snake/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List all available backends",
	Long:  `Shows a list of all presentation backends compiled into snake.`,
	Run:   runBackends,
}

func runBackends(cmd *cobra.Command, args []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()
	fmt.Println(backendsTable(backends))
	fmt.Println()
	fmt.Println("Run 'snake play --backend <name>' to use one.")
}

// backendsTable renders the listing as a static table.
func backendsTable(backends []registry.BackendInfo) string {
	// Calculate column widths
	nameWidth, descWidth := len("Name"), len("Description")
	rows := make([]table.Row, len(backends))
	for i, b := range backends {
		kind := "window"
		if b.Terminal {
			kind = "terminal"
		}
		rows[i] = table.Row{b.Name, kind, b.Description}
		nameWidth = max(nameWidth, len(b.Name))
		descWidth = max(descWidth, len(b.Description))
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: nameWidth},
			{Title: "Kind", Width: len("terminal")},
			{Title: "Description", Width: descWidth},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+3), // header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}
