package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sirkon/fragile/internal/cluster"
	"github.com/sirkon/fragile/internal/fragile"
)

const demoModule = "FragileFunction"

func newDemoCommand(root *rootOptions) *cobra.Command {
	var allFragile, showModule bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Classify a synthetic two-function program",
		Long: `Build an in-memory module with functions foo (block at 1:1) and bar (block
at 1:0), classify them against two 1:1-2:1 clusters and print the report.
Only foo is fragile unless --all-fragile moves bar's block to 1:1.
--show-module prints the constructed module after the report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.settings(cmd)
			if err != nil {
				return fmt.Errorf("get settings: %w", err)
			}

			fns, clusters := demoProgram(allFragile)
			classifier := fragile.New(clusters, fragile.WithLogger(cfg.Logger(cmd.ErrOrStderr())))
			set, err := classifier.Run(cmd.Context(), fns)
			if err != nil {
				return fmt.Errorf("classify: %w", err)
			}

			if err := writeReport(cmd, cfg, set, clusters); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			if !showModule {
				return nil
			}

			return writeDemoModule(cmd.OutOrStdout(), fns, clusters)
		},
	}

	cmd.Flags().BoolVar(&allFragile, "all-fragile", false, "Place bar inside the clusters as well")
	cmd.Flags().BoolVar(&showModule, "show-module", false, "Print the constructed module after the report")

	return cmd
}

func demoProgram(allFragile bool) ([]fragile.Function, []cluster.Cluster) {
	barAt := fragile.At(1, 0)
	if allFragile {
		barAt = fragile.At(1, 1)
	}

	foo := &fragile.Unit{FuncName: "foo", File: demoModule, Blocks: []fragile.Block{fragile.At(1, 1)}}
	bar := &fragile.Unit{FuncName: "bar", File: demoModule, Blocks: []fragile.Block{barAt}}

	span := cluster.Cluster{
		Start: cluster.Position{Line: 1, Column: 1},
		End:   cluster.Position{Line: 2, Column: 1},
	}

	return []fragile.Function{foo, bar}, []cluster.Cluster{span, span}
}

// writeDemoModule lists functions with their block locations and clusters.
func writeDemoModule(w io.Writer, fns []fragile.Function, clusters []cluster.Cluster) error {
	if _, err := fmt.Fprintf(w, "\nModule %s:\n", demoModule); err != nil {
		return err
	}
	for _, c := range clusters {
		if _, err := fmt.Fprintf(w, "cluster %s\n", c); err != nil {
			return err
		}
	}
	for _, fn := range fns {
		if _, err := fmt.Fprintf(w, "func %s() {\n", fn.Name()); err != nil {
			return err
		}
		for i := range fn.NumBlocks() {
			loc := "<unknown>"
			if pos, ok := fn.BlockPosition(i); ok {
				loc = pos.String()
			}
			if _, err := fmt.Fprintf(w, "  block %d at %s\n", i, loc); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "}"); err != nil {
			return err
		}
	}

	return nil
}
