package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-uikit/internal/logger"
)

const envPrefix = "UIKIT"

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "uikit",
		Short:         "Render and preview declarative uikit pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cfgFile, cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("log-human", false, "human readable console logs")

	cmd.AddCommand(newRenderCmd(v))
	cmd.AddCommand(newPromptCmd(v))
	cmd.AddCommand(newServeCmd(v))
	cmd.AddCommand(newComponentsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// initConfig layers flags over UIKIT_* environment variables over the
// optional config file.
func initConfig(v *viper.Viper, cfgFile string, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}
	return nil
}

func newLogger(v *viper.Viper, cmd *cobra.Command) (zerolog.Logger, error) {
	return logger.New(logger.Options{
		Level:         v.GetString("log-level"),
		HumanReadable: v.GetBool("log-human"),
		Writer:        cmd.ErrOrStderr(),
	})
}
