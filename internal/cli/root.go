// Package cli implements the jwl command-line interface.
package cli

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nils-degroot/jwl/internal/config"
	"github.com/nils-degroot/jwl/internal/jira"
)

var log = logrus.New()

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "jwl",
	Short:         "Create and view worklogs using Jira",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetLevel(logrus.WarnLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveDate parses an optional yyyy-mm-dd date flag, defaulting to
// the current UTC date.
func resolveDate(flag string) (time.Time, error) {
	if flag == "" {
		return time.Now().UTC(), nil
	}
	t, err := time.Parse("2006-01-02", flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse %q to a valid date, dates should have format `yyyy-mm-dd`", flag)
	}
	return t.UTC(), nil
}

// loadContext reads the config file and picks the context for this
// invocation.
func loadContext(name string) (config.Context, error) {
	path, err := config.Path()
	if err != nil {
		return config.Context{}, err
	}
	f, err := config.Load(path)
	if err != nil {
		return config.Context{}, err
	}
	return f.Select(name)
}

// newClient builds an API client and credentials from a context.
func newClient(ctx config.Context) (*jira.Client, jira.Authorization, error) {
	auth, err := ctx.Authorization.Credentials()
	if err != nil {
		return nil, nil, err
	}
	return jira.NewClient(ctx.JiraDomain, jira.WithLogger(log)), auth, nil
}
