package commands

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.hartos.dev/mach/internal/core/domain"
	"go.hartos.dev/mach/internal/ui/style"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	nameStyle    = lipgloss.NewStyle().Foreground(style.Copper)
	descStyle    = lipgloss.NewStyle().Foreground(style.Steel)
)

func (c *CLI) newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "Print the task catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.printCatalog(cmd)
		},
	}
}

func (c *CLI) printCatalog(cmd *cobra.Command) error {
	_, err := io.WriteString(cmd.OutOrStdout(), RenderCatalog(c.app.Catalog()))
	return err
}

// RenderCatalog formats the documented tasks as an aligned, name-sorted
// listing.
func RenderCatalog(entries []domain.CatalogEntry) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Available tasks:"))
	b.WriteString("\n")

	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}

	for _, e := range entries {
		b.WriteString("  ")
		b.WriteString(nameStyle.Render(e.Name))
		b.WriteString(strings.Repeat(" ", width-len(e.Name)+2))
		b.WriteString(descStyle.Render(e.Description))
		b.WriteString("\n")
	}
	return b.String()
}
