package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dirkeep/pkg/config"
	"github.com/arthur-debert/dirkeep/pkg/errors"
	"github.com/arthur-debert/dirkeep/pkg/paths"
)

func newGenConfigCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Write a starter configuration file",
		Long: `Genconfig writes the commented default configuration to the XDG
config directory. The generated file ships with force-dry-run
enabled, so auto-move stays harmless until you opt in.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdout {
				_, err := cmd.OutOrStdout().Write(config.DefaultConfigBytes())
				return err
			}

			dest := paths.DefaultConfigFile()
			if _, err := os.Stat(dest); err == nil && !force {
				return errors.Newf(errors.ErrInvalidInput,
					"%s already exists (use --force to overwrite)", dest)
			}

			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad,
					"cannot create config directory %s", filepath.Dir(dest))
			}
			if err := os.WriteFile(dest, config.DefaultConfigBytes(), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrConfigLoad,
					"cannot write %s", dest)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", dest)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the default config instead of writing it")
	return cmd
}
