package cli

import (
	"github.com/spf13/cobra"

	"github.com/nils-degroot/jwl/internal/jira"
)

var (
	addComment string
	addDate    string
	addContext string
)

var addCmd = &cobra.Command{
	Use:   "add <issue> <time-spent>",
	Short: "Create a new worklog",
	Long: `Create a new worklog on an issue. The time spent is given as days (#d),
hours (#h), or minutes (#m or #) and is passed to the server as-is.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		issue, timeSpent := args[0], args[1]

		day, err := resolveDate(addDate)
		if err != nil {
			return err
		}
		cfgCtx, err := loadContext(addContext)
		if err != nil {
			return err
		}
		client, auth, err := newClient(cfgCtx)
		if err != nil {
			return err
		}

		req := jira.CreateWorklogRequest{
			Issue:     issue,
			TimeSpent: timeSpent,
			Started:   day,
		}
		if addComment != "" {
			req.Comment = &addComment
		}

		// Silent on success, the exit code is the result.
		return client.CreateWorklog(cmd.Context(), req, auth)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addComment, "comment", "m", "", "comment to add to the worklog")
	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "date on which the worklog effort was started, defaults to today")
	addCmd.Flags().StringVarP(&addContext, "context", "c", "", "context to use by name, only required with multiple contexts")
	rootCmd.AddCommand(addCmd)
}
