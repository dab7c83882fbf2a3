// Package cli wires the dirkeep commands: check, auto-move, config
// bootstrapping and docs. All rule evaluation lives in pkg/; this
// package only loads configuration, runs the pipeline and renders.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dirkeep/internal/version"
	"github.com/arthur-debert/dirkeep/pkg/config"
	"github.com/arthur-debert/dirkeep/pkg/errors"
	"github.com/arthur-debert/dirkeep/pkg/logging"
	"github.com/arthur-debert/dirkeep/pkg/paths"
	"github.com/arthur-debert/dirkeep/pkg/rules"
	"github.com/arthur-debert/dirkeep/pkg/style"
)

// ErrIssuesFound signals that the run completed but found misplaced
// entries, skipped conflicts or per-rule errors. The report has
// already been printed; Main turns it into a bare exit code 1.
var ErrIssuesFound = stderrors.New("issues found")

// Main executes the root command and maps errors to exit codes:
// 0 clean, 1 issues found, 2 fatal error (bad config, unusable paths).
func Main() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if stderrors.Is(err, ErrIssuesFound) {
			return 1
		}
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return 2
	}
	return 0
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "dirkeep",
		Short: "Keep directories tidy with declarative placement rules",
		Long: `dirkeep audits directories against placement rules you declare in a
config file and, with auto-move rules, relocates misplaced files to
where they belong.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/dirkeep/dirkeep.toml)")

	rootCmd.AddCommand(newCheckCmd(&configPath))
	rootCmd.AddCommand(newAutoMoveCmd(&configPath))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newShowConfigCmd(&configPath))
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadRuleSet loads the configuration and compiles the rule model.
// Both steps are fatal on failure, before any scanning begins.
func loadRuleSet(configPath string) (*config.Config, *rules.RuleSet, error) {
	path, err := paths.FindConfigFile(configPath)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return nil, nil, errors.Newf(errors.ErrConfigLoad,
			"no configuration file found; run 'dirkeep genconfig' to create one")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	rs, err := config.BuildRuleSet(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, rs, nil
}

// resolveTarget canonicalizes the optional positional target argument
// used to narrow a run to rules under one directory.
func resolveTarget(args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	abs, err := filepath.Abs(args[0])
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput,
			"cannot resolve target %q", args[0])
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput,
			"target %q does not exist", args[0])
	}
	return resolved, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dirkeep version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}
