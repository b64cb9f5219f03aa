package commands

import (
	"github.com/spf13/cobra"
	"go.hartos.dev/mach/internal/core/domain"
)

func (c *CLI) newTaskCmd(def domain.TaskDefinition) *cobra.Command {
	return &cobra.Command{
		Use:    def.Name,
		Short:  def.Description,
		Hidden: def.Description == "",
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), def.Name)
		},
	}
}
