package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nils-degroot/jwl/internal/jira"
)

var (
	viewDate    string
	viewContext string
)

var viewCmd = &cobra.Command{
	Use:   "view <issue>",
	Short: "View all worklogs for an issue and date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		issue := args[0]

		day, err := resolveDate(viewDate)
		if err != nil {
			return err
		}
		cfgCtx, err := loadContext(viewContext)
		if err != nil {
			return err
		}
		client, auth, err := newClient(cfgCtx)
		if err != nil {
			return err
		}

		logs, err := client.ListWorklogs(cmd.Context(), jira.DayWindow(issue, day), auth)
		if err != nil {
			return err
		}

		for _, w := range logs {
			fmt.Fprintln(cmd.OutOrStdout(), formatWorklog(issue, w))
		}
		return nil
	},
}

// formatWorklog renders a single worklog line in the form
// > ISSUE-1 <Jane> `2h` some comment
func formatWorklog(issue string, w jira.Worklog) string {
	comment := "`no comment`"
	if w.Comment != nil {
		comment = *w.Comment
	}
	return fmt.Sprintf("> %s <%s> `%s` %s", issue, w.Author.DisplayName, w.TimeSpent, comment)
}

func init() {
	viewCmd.Flags().StringVarP(&viewDate, "date", "d", "", "date to filter to (yyyy-mm-dd), defaults to today")
	viewCmd.Flags().StringVarP(&viewContext, "context", "c", "", "context to use by name, only required with multiple contexts")
	rootCmd.AddCommand(viewCmd)
}
