package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-uikit/pkg/page"
	"github.com/goliatone/go-uikit/pkg/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <page>",
		Short: "Preview a page over HTTP with live interactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(v, cmd)
			if err != nil {
				return err
			}
			spec, err := page.LoadFile(args[0])
			if err != nil {
				return err
			}
			opts, err := renderOptions(v, spec, log)
			if err != nil {
				return err
			}
			renderer, err := newPageRenderer(v, log)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			doc, err := renderer.Build(ctx, spec)
			if err != nil {
				return err
			}
			handler, err := server.New(doc,
				server.WithRenderer(renderer),
				server.WithRenderOptions(opts),
				server.WithLogger(log),
			)
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", v.GetString("addr"))
			if err != nil {
				return fmt.Errorf("listen %s: %w", v.GetString("addr"), err)
			}
			srv := &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second}
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Serve(ln) }()
			log.Info().Str("addr", ln.Addr().String()).Str("page", doc.Page.ID).Msg("serving preview")
			fmt.Fprintf(cmd.OutOrStdout(), "http://%s/\n", ln.Addr())

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			log.Info().Msg("shutting down")
			return srv.Shutdown(shutdownCtx)
		},
	}
	addRenderFlags(cmd)
	cmd.Flags().String("addr", "127.0.0.1:8080", "listen address")
	return cmd
}
