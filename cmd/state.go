package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newStateCmd builds the state command
func newStateCmd() *cobra.Command {
	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "Print in-progress git operations",
		Long: `Print the operations the current repository is in the middle of
(rebase, am, merge, cherry-pick, revert, bisect). Prints nothing outside a
repository or when no operation is in progress.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := promptSvc.RepoState(context.Background())
			out := cmd.OutOrStdout()

			if jsonOutput {
				data, err := json.Marshal(state.Tags())
				if err != nil {
					return fmt.Errorf("failed to marshal state: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if rendered := promptSvc.RenderRepoState(state); rendered != "" {
				fmt.Fprintln(out, rendered)
			}
			return nil
		},
	}

	stateCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the tags in JSON format")
	return stateCmd
}
