package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dirkeep/pkg/automove"
	"github.com/arthur-debert/dirkeep/pkg/checker"
	"github.com/arthur-debert/dirkeep/pkg/display"
	"github.com/arthur-debert/dirkeep/pkg/filesystem"
	"github.com/arthur-debert/dirkeep/pkg/logging"
)

func newCheckCmd(configPath *string) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "check [target]",
		Short: "Report misplaced files and directories",
		Long: `Check scans every configured directory and reports entries that fail
its placement rules. With a target argument, only rules for
directories under the target are run.

The exit code is 1 when anything is misplaced or a directory could
not be scanned, 0 when everything is in place.`,
		Example: `  # Check all configured directories
  dirkeep check

  # Check only rules under the downloads folder
  dirkeep check ~/Downloads

  # Raw listing of misplaced paths, one per line
  dirkeep check --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.check")

			cfg, rs, err := loadRuleSet(*configPath)
			if err != nil {
				return err
			}

			target, err := resolveTarget(args)
			if err != nil {
				return err
			}
			scoped := rs.FilterUnder(target)

			fsys := filesystem.NewOS()
			report := checker.New(fsys).Scan(scoped.DirRules)

			logger.Info().
				Int("rules", len(scoped.DirRules)).
				Int("misplaced", report.TotalMisplaced()).
				Msg("Check complete")

			if list {
				display.WriteCheckList(os.Stdout, &report)
			} else {
				renderer := display.NewRenderer(os.Stdout,
					display.ColorEnabled(cfg.Settings.Color), cfg.Settings.Unicode)
				renderer.RenderCheckReport(&report)

				if mode := cfg.AutoMove.ReportInfo; mode == "any" || mode == "count" {
					count := automove.NewResolver(fsys).CountMatches(scoped.MoveRules)
					renderer.RenderAutoMoveHint(mode, count)
				}
			}

			if report.HasIssues() {
				return ErrIssuesFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "Print misplaced paths only, one per line")
	return cmd
}
