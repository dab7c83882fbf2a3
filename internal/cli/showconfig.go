package cli

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dirkeep/pkg/config"
	"github.com/arthur-debert/dirkeep/pkg/errors"
	"github.com/arthur-debert/dirkeep/pkg/paths"
)

func newShowConfigCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "showconfig",
		Short: "Print the effective configuration",
		Long: `Showconfig prints the configuration as dirkeep sees it after merging
the embedded defaults, the config file and DIRKEEP_* environment
overrides. Useful to verify what a run will actually do.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := paths.FindConfigFile(*configPath)
			if err != nil {
				return err
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			out, err := toml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "cannot render configuration")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
