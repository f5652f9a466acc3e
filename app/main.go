package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Neev4n/rush/internal/config"
	builtins "github.com/Neev4n/rush/internal/shell"
	"github.com/Neev4n/rush/pkg/shell"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "rush",
		Short:         "A small interactive shell",
		Long:          "rush reads commands line by line, runs its builtins (exit, cd, help, ls, mkdir, nano) and spawns everything else from PATH.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}

	config.Flags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	registry := builtins.Builtins(cfg.Editors)

	opts := []shell.Option{
		shell.WithBuiltins(registry),
		shell.WithPrompt(cfg.Prompt),
		shell.WithLogger(logger),
		shell.WithLineReader(shell.NewLineReader(os.Stdin, os.Stdout, registry.Names())),
	}
	if cfg.Banner {
		opts = append(opts, shell.WithBanner(builtins.Welcome(registry), builtins.Farewell))
	}

	s := shell.New(os.Stdin, os.Stdout, os.Stderr, opts...)

	logger.WithFields(logrus.Fields{
		"prompt":  cfg.Prompt,
		"editors": cfg.Editors,
	}).Debug("starting shell")

	return s.Run(cmd.Context())
}
