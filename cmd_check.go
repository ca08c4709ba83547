package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirkon/fragile/internal/fragile"
	"github.com/sirkon/fragile/internal/ssaunit"
)

type checkOptions struct {
	dir     string
	tests   bool
	workers int
}

func newCheckCommand(root *rootOptions) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Classify functions of Go packages",
		Long: `Load packages, build their SSA form and report functions having a block
located inside any configured cluster. Packages default to the current one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", "", "Directory to load packages from")
	cmd.Flags().BoolVar(&opts.tests, "tests", false, "Include test files")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Number of classification workers, overrides configuration")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, root *rootOptions, opts *checkOptions) error {
	cfg, err := root.settings(cmd)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}
	log := cfg.Logger(cmd.ErrOrStderr())

	if len(args) == 0 {
		args = []string{"."}
	}
	if len(cfg.Clusters) == 0 {
		log.Warn("no clusters configured, nothing can be fragile")
	}

	fns, err := ssaunit.Load(cmd.Context(), ssaunit.LoadConfig{
		Dir:    opts.dir,
		Tests:  opts.tests,
		Logger: log,
	}, args...)
	if err != nil {
		return fmt.Errorf("load functions: %w", err)
	}

	classifier := fragile.New(
		cfg.Clusters,
		fragile.WithLogger(log),
		fragile.WithWorkers(cfg.Workers),
	)
	set, err := classifier.Run(cmd.Context(), fns)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	return writeReport(cmd, cfg, set, classifier.Clusters())
}
