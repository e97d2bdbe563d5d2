package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-uikit/pkg/page"
)

func newRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Render a page document to HTML",
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
			opts, err := renderOptions(v, doc, log)
			if err != nil {
				return err
			}
			renderer, err := newPageRenderer(v, log)
			if err != nil {
				return err
			}
			out, err := renderer.Render(cmd.Context(), doc, opts)
			if err != nil {
				return err
			}
			log.Debug().Str("page", doc.ID).Int("bytes", len(out)).Msg("rendered")
			return writeOutput(cmd, v.GetString("output"), out)
		},
	}
	addRenderFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	return cmd
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		return writeAll(cmd.OutOrStdout(), data)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeAll(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
