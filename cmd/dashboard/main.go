package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"keyword-dashboard/internal/config"
	"keyword-dashboard/internal/logging"
)

type cliOptions struct {
	configPath string
	baseDir    string
	output     string
	verbose    bool

	logger *zap.Logger
	now    func() time.Time
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	if opts.now == nil {
		opts.now = time.Now
	}

	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Build the keyword analysis dashboard",
		Long: `dashboard reads keyword research exports for the operator's own
categories and for each competitor, and writes a single self-contained HTML
dashboard with per-source tables, search and column sorting.

Run without arguments to use the built-in configuration in the current
directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}
			logger, err := logging.New(opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, opts.logger)
			if err != nil {
				return err
			}
			out, err := run(cfg, opts.logger, opts.now(), uuid.NewString())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "完了: %s\n", out)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file (default: built-in)")
	root.Flags().StringVar(&opts.baseDir, "base-dir", "", "override base_dir from the configuration")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "override output from the configuration")

	root.AddCommand(&cobra.Command{
		Use:   "init-config <file>",
		Short: "Write the built-in configuration to a file for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := config.EnsureFile(args[0])
			if err != nil {
				return err
			}
			if !created {
				return fmt.Errorf("%s already exists", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	})

	return root
}

func main() {
	if err := newRootCmd(&cliOptions{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
