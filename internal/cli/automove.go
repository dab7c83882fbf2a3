package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dirkeep/pkg/automove"
	"github.com/arthur-debert/dirkeep/pkg/display"
	"github.com/arthur-debert/dirkeep/pkg/filesystem"
	"github.com/arthur-debert/dirkeep/pkg/logging"
	"github.com/arthur-debert/dirkeep/pkg/style"
)

func newAutoMoveCmd(configPath *string) *cobra.Command {
	var (
		dry  bool
		list bool
	)

	cmd := &cobra.Command{
		Use:   "auto-move [target]",
		Short: "Move matched files to their configured destination",
		Long: `Auto-move scans each rule's parent directory, matches its immediate
children and moves them to the rule's destination, consulting the
naming script when one is configured.

While force-dry-run is enabled in the configuration, no file is ever
moved, with or without --dry; disable it in the config file once your
rules are trusted.`,
		Example: `  # Preview all moves
  dirkeep auto-move --dry

  # Move for real (once force-dry-run is off)
  dirkeep auto-move

  # Raw "old-path new-path" listing
  dirkeep auto-move --dry --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.auto-move")

			cfg, rs, err := loadRuleSet(*configPath)
			if err != nil {
				return err
			}

			target, err := resolveTarget(args)
			if err != nil {
				return err
			}
			scoped := rs.FilterUnder(target)

			effectiveDry := dry || cfg.AutoMove.ForceDryRun
			color := display.ColorEnabled(cfg.Settings.Color)

			if !list {
				printDryNotice(cfg.AutoMove.ForceDryRun, dry, color)
			}

			fsys := filesystem.NewOS()
			results := automove.NewResolver(fsys).Resolve(scoped.MoveRules)
			results = automove.NewExecutor(fsys).ExecuteAll(results,
				effectiveDry, cfg.AutoMove.AllowOverwrite)

			logger.Info().
				Int("rules", len(scoped.MoveRules)).
				Int("actions", automove.TotalActions(results)).
				Bool("dry", effectiveDry).
				Msg("Auto-move complete")

			if list {
				display.WriteMoveList(os.Stdout, results)
			} else {
				renderer := display.NewRenderer(os.Stdout, color, cfg.Settings.Unicode)
				renderer.RenderMoveResults(results, cfg.Settings.HideOkDirectories)

				if cfg.AutoMove.ForceDryRun && automove.TotalActions(results) > 0 {
					msg := "No files were actually moved: force-dry-run is enabled in the config file."
					if color {
						msg = style.Italic(msg)
					}
					fmt.Fprintf(os.Stderr, "\n%s\n", msg)
				}
			}

			if automove.HasIssues(results) {
				return ErrIssuesFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dry, "dry", "d", false, "Compute and report moves without applying them")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Print \"old-path new-path\" pairs only")
	return cmd
}

// printDryNotice warns on stderr when a run will not mutate anything,
// distinguishing the configuration rail from an explicit --dry.
func printDryNotice(forced, dry, color bool) {
	var msg string
	switch {
	case forced:
		msg = "Info! Dry run is forced by the config as a safety measure for new " +
			"setups. Turn off 'force-dry-run' in the config file to let " +
			"auto-move actually move files."
	case dry:
		msg = "Info! Auto-move running in dry mode, no files will actually be moved."
	default:
		return
	}
	if color {
		msg = style.WarningStyle.Render(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}
