package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sirkon/fragile/internal/cluster"
	"github.com/sirkon/fragile/internal/config"
	"github.com/sirkon/fragile/internal/fragile"
	"github.com/sirkon/fragile/internal/report"
)

const longDoc = `fragile marks functions whose code originates from fragile source clusters.

A cluster is a line:column rectangle flagged by an upstream analysis. A function
is fragile when the leading instruction of any of its SSA blocks falls inside a
cluster, with lines and columns checked as independent ranges.`

// rootOptions are flags shared by every subcommand.
type rootOptions struct {
	config   string
	clusters string
	format   report.Format
	color    config.ColorMode
	logLevel string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{
		format: report.FormatTable,
		color:  config.ColorAuto,
	}

	cmd := &cobra.Command{
		Use:          "fragile",
		Short:        "Fragile function classifier",
		Long:         longDoc,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.config, "config", ".fragile.yaml", "Path to configuration file")
	flags.StringVar(&opts.clusters, "clusters", "", "YAML file with clusters, replaces clusters from configuration")
	flags.Var(enumFlag{value: &opts.format, typ: "format"}, "format", "Output format: table, json")
	flags.Var(enumFlag{value: &opts.color, typ: "color"}, "color", "Color output: auto, always, never")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newDemoCommand(opts))

	return cmd
}

// settings merges configuration file, environment and flags, flags winning.
func (o *rootOptions) settings(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(o.config)
	} else {
		cfg, err = config.LoadOptional(o.config)
	}
	if err != nil {
		return cfg, err
	}

	if o.clusters != "" {
		cfg.Clusters, err = cluster.LoadFile(o.clusters, cfg.Strict)
		if err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = o.format
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = o.color
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}

	return cfg, nil
}

// writeReport renders the set in the configured format.
func writeReport(cmd *cobra.Command, cfg config.Config, set *fragile.Set, clusters []cluster.Cluster) error {
	out := cmd.OutOrStdout()
	f, _ := out.(*os.File)

	var r report.Reporter
	r.SetColor(cfg.Output.Color.Enabled(f))
	r.AddSet(set, clusters)

	return r.Write(out, cfg.Output.Format)
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
