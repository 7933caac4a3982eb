package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nils-degroot/jwl/internal/config"
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Setup the configuration using a prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := config.Setup()
		if err != nil {
			return err
		}

		path, err := config.Path()
		if err != nil {
			return err
		}
		if err := config.Store(path, f); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Config created, application ready for use"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
