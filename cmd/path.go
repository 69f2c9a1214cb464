package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var pathPlain bool

// newPathCmd builds the path command
func newPathCmd() *cobra.Command {
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the abbreviated working directory",
		Long:  `Print only the formatted working directory, styled by default.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if jsonOutput {
				segments, ok := promptSvc.PathSegments()
				if !ok {
					fmt.Fprintln(out, "null")
					return nil
				}
				data, err := json.Marshal(segments)
				if err != nil {
					return fmt.Errorf("failed to marshal path: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintln(out, promptSvc.Path(!pathPlain))
			return nil
		},
	}

	pathCmd.Flags().BoolVar(&pathPlain, "plain", false, "Print without styling")
	pathCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the segments in JSON format")
	pathCmd.MarkFlagsMutuallyExclusive("plain", "json")
	return pathCmd
}
