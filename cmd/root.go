package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/bjulian5/prget/cmd/checkout"
	"github.com/bjulian5/prget/cmd/create"
	"github.com/bjulian5/prget/cmd/diff"
	"github.com/bjulian5/prget/cmd/list"
	"github.com/bjulian5/prget/cmd/open"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prget",
	Short: "Fetch and check out GitHub pull requests",
	Long: `Prget is a CLI tool for working with GitHub pull requests locally.

It lists the open pull requests of the repository's base remote, checks a
selected PR out as a detached HEAD or a local branch, shows its diff, opens
it in the browser, and opens the comparison page for creating a new pull
request from the current branch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.Fatal(err)
	}
}

func init() {
	// Register all commands
	commands := []Command{
		&list.Command{},
		&checkout.Command{},
		&diff.Command{},
		&open.Command{},
		&create.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
