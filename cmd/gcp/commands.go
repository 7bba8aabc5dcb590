package main

import (
	"fmt"

	"github.com/sandevgo/gcp/internal/service/command"
	"github.com/sandevgo/gcp/internal/service/ui"
	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List built-in command signatures",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, info := range command.NewDefault().ListCommands() {
			fmt.Fprintf(out, "%s  %s\n", ui.TitleStyle.UnsetMarginBottom().Render(info.Name), ui.DescStyle.Render(info.Description))
			for _, sig := range info.Signatures {
				fmt.Fprintf(out, "  %s\n", ui.UsageStyle.Render(sig.String()))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
