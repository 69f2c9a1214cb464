// Package cmd provides the CLI commands for promptline.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/promptline/internal/adapters/fs"
	"github.com/xvierd/promptline/internal/adapters/git"
	"github.com/xvierd/promptline/internal/adapters/render"
	"github.com/xvierd/promptline/internal/adapters/system"
	"github.com/xvierd/promptline/internal/config"
	"github.com/xvierd/promptline/internal/logging"
	"github.com/xvierd/promptline/internal/pathfmt"
	"github.com/xvierd/promptline/internal/ports"
	"github.com/xvierd/promptline/internal/services"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	titleMode  bool
	rightMode  bool
	jsonOutput bool

	// Global dependencies
	appConfig *config.Config
	logger    *slog.Logger
	promptSvc *services.PromptService
)

// newRootCmd builds the base command and its subcommands. Each call returns
// a command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "promptline",
		Short: "promptline - a fast shell prompt",
		Long: `promptline prints a shell prompt: hostname, user, an abbreviated
working directory, in-progress git operations and a prompt character
colored by write permission.

  promptline           full prompt line
  promptline --title   window title
  promptline --right   right prompt with git ref and last commit subject`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeServices(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		RunE: runPrompt,
	}

	rootCmd.Flags().BoolVar(&titleMode, "title", false, "Print the window title instead of the prompt")
	rootCmd.Flags().BoolVar(&rightMode, "right", false, "Print the right prompt (git ref and last commit subject)")
	rootCmd.MarkFlagsMutuallyExclusive("title", "right")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("promptline {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newStateCmd())
	return rootCmd
}

// Execute builds the command tree and runs it.
// The exit status is always 0: a shell prompt must never break the shell.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "promptline: %v\n", err)
	}
}

// initializeServices sets up all the required services and adapters.
func initializeServices(stdout, stderr io.Writer) error {
	var warnings []string
	var err error
	appConfig, warnings, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		fmt.Fprintf(stderr, "Warning: %v\n", err)
		appConfig = config.DefaultConfig()
	}
	// Printed regardless of log level.
	for _, w := range warnings {
		fmt.Fprintf(stderr, "Warning: %s\n", w)
	}

	logger = logging.New(stderr, appConfig.LogLevel)

	var backend ports.GitBackend
	switch appConfig.Git.Backend {
	case config.BackendGoGit:
		backend = git.NewDetector()
	default:
		backend = git.NewCLI(appConfig.Git.Binary)
	}

	sys := system.New()
	profile := render.Profile(appConfig.Color, os.Stderr.Fd())

	promptSvc = services.NewPromptService(services.PromptDeps{
		Env:         system.Env(nil),
		Home:        sys,
		Host:        sys,
		User:        sys,
		Git:         backend,
		FS:          fs.NewOSChecker(),
		Permissions: fs.NewPermissions(),
		Formatter:   pathfmt.New(pathfmt.Options{AbbreviateIntermediate: appConfig.Abbreviate}),
		Renderer:    render.New(stdout, profile, &appConfig.Theme),
		Logger:      logger,
	})
	return nil
}

// runPrompt prints one of the three prompt modes.
func runPrompt(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	switch {
	case titleMode:
		fmt.Fprintln(out, promptSvc.Title())
	case rightMode:
		fmt.Fprintln(out, promptSvc.Right(ctx))
	default:
		fmt.Fprintln(out, promptSvc.Prompt(ctx))
	}
	return nil
}
