package cli

import (
	"embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dirkeep/pkg/errors"
)

//go:embed docs/*.md
var docsFS embed.FS

var docTopics = map[string]string{
	"config": "docs/config.md",
}

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "docs [topic]",
		Short:     "Show reference documentation",
		Long:      `Docs renders the built-in reference documentation. Currently the only topic is "config", the configuration file reference.`,
		ValidArgs: []string{"config"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := "config"
			if len(args) > 0 {
				topic = args[0]
			}

			content, err := docsFS.ReadFile(docTopics[topic])
			if err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "missing doc topic %q", topic)
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				// Fall back to the raw markdown when the terminal
				// renderer cannot be built.
				fmt.Fprint(cmd.OutOrStdout(), string(content))
				return nil
			}

			out, err := renderer.Render(string(content))
			if err != nil {
				fmt.Fprint(cmd.OutOrStdout(), string(content))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
