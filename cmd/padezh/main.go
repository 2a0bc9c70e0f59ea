// Command padezh resolves Russian noun declensions from the command line.
//
//	padezh resolve стол книга
//	padezh warm --difficulty intermediate
//	padezh irregular
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/padezh/internal/app"
	"github.com/heartmarshall/padezh/internal/config"
	"github.com/heartmarshall/padezh/internal/service/declension"
)

// cli holds state shared by the subcommands.
type cli struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "padezh",
		Short:         "Russian noun declension resolver",
		Long:          "padezh resolves Russian nouns to all six cases in singular and plural,\nfalling back from ru.wiktionary to curated irregulars, en.wiktionary and suffix rules.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(c.configPath)
			if err != nil {
				return err
			}
			if c.verbose {
				cfg.Log.Level = "debug"
			}
			c.cfg = cfg
			c.logger = app.NewLogger(cfg.Log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", os.Getenv("CONFIG_PATH"), "path to config.yaml")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newResolveCmd(c),
		newWarmCmd(c),
		newIrregularCmd(),
		newVersionCmd(),
	)
	return root
}

func (c *cli) resolver() *declension.Service {
	return app.NewResolver(c.cfg, c.logger)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
			return err
		},
	}
}
