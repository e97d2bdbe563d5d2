package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/renderers/tui"
)

// newPromptDriver is swapped in tests.
var newPromptDriver = func(out io.Writer) tui.PromptDriver {
	return tui.NewSurveyDriver(out)
}

func newPromptCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt <page>",
		Short: "Fill a page's fields in the terminal and print the values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(v, cmd)
			if err != nil {
				return err
			}
			doc, err := page.LoadFile(args[0])
			if err != nil {
				return err
			}
			renderer := tui.New(
				tui.WithPromptDriver(newPromptDriver(cmd.ErrOrStderr())),
				tui.WithOutputFormat(tui.ParseOutputFormat(v.GetString("format"))),
			)
			out, err := renderer.Render(cmd.Context(), doc, render.RenderOptions{Logger: &log})
			if err != nil {
				return err
			}
			log.Debug().Str("page", doc.ID).Str("format", renderer.ContentType()).Msg("collected values")
			return writeOutput(cmd, v.GetString("output"), out)
		},
	}
	cmd.Flags().String("format", string(tui.OutputFormatJSON), "output format (json, form, pretty)")
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	return cmd
}
