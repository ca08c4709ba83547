package fragile

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/sirkon/fragile/internal/cluster"
)

// Classify returns the set of functions having at least one block located
// inside any of the clusters. Neither functions nor clusters are modified.
func Classify(functions []Function, clusters []cluster.Cluster) *Set {
	return classify(functions, clusters, cluster.IsWithin, discardLogger)
}

// ClassifyContext is Classify spread over the given number of workers. Each
// worker handles a contiguous part of functions, partial results are merged
// by union.
func ClassifyContext(
	ctx context.Context,
	functions []Function,
	clusters []cluster.Cluster,
	workers int,
) (*Set, error) {
	return New(clusters, WithWorkers(workers)).Run(ctx, functions)
}

var discardLogger = slog.New(slog.DiscardHandler)

func classify(functions []Function, clusters []cluster.Cluster, match cluster.Matcher, log *slog.Logger) *Set {
	res := NewSet()
	if len(clusters) == 0 {
		return res
	}

	for _, fn := range functions {
		idx, ok := firstMatch(fn, clusters, match)
		if !ok {
			log.Debug("function is not fragile", slog.String("function", fn.Name()))
			continue
		}

		log.Debug(
			"function is fragile",
			slog.String("function", fn.Name()),
			slog.String("cluster", clusters[idx].String()),
		)
		res.add(fn, idx)
	}

	return res
}

// firstMatch returns the index of the first cluster one of fn's located
// blocks falls into. Remaining clusters are not looked at once fn matched.
func firstMatch(fn Function, clusters []cluster.Cluster, match cluster.Matcher) (int, bool) {
	n := fn.NumBlocks()
	for ci, c := range clusters {
		for bi := range n {
			pos, ok := fn.BlockPosition(bi)
			if !ok {
				continue
			}

			if match(pos, c) {
				return ci, true
			}
		}
	}

	return 0, false
}

// Classifier holds classification settings and the result of the last run.
// Every Run starts from an empty result.
type Classifier struct {
	clusters []cluster.Cluster
	match    cluster.Matcher
	log      *slog.Logger
	workers  int

	result *Set
}

// Option configures [Classifier].
type Option func(c *Classifier)

// WithMatcher replaces the overlap rule. A nil matcher keeps [cluster.IsWithin].
func WithMatcher(m cluster.Matcher) Option {
	return func(c *Classifier) {
		if m != nil {
			c.match = m
		}
	}
}

// WithLogger sets a logger for per-function verdicts.
func WithLogger(log *slog.Logger) Option {
	return func(c *Classifier) {
		if log != nil {
			c.log = log
		}
	}
}

// WithWorkers sets the number of workers. Values below 2 mean sequential run.
func WithWorkers(n int) Option {
	return func(c *Classifier) {
		c.workers = n
	}
}

// New is [Classifier] constructor. Clusters are copied.
func New(clusters []cluster.Cluster, opts ...Option) *Classifier {
	c := &Classifier{
		clusters: slices.Clone(clusters),
		match:    cluster.IsWithin,
		log:      discardLogger,
		workers:  1,
		result:   NewSet(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Clusters returns configured clusters.
func (c *Classifier) Clusters() []cluster.Cluster {
	return slices.Clone(c.clusters)
}

// Result returns the set computed by the last Run.
func (c *Classifier) Result() *Set {
	return c.result
}

// Run classifies functions. The previous result is dropped first. An already
// cancelled context fails the run regardless of the number of workers.
func (c *Classifier) Run(ctx context.Context, functions []Function) (*Set, error) {
	c.result = NewSet()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classify functions: %w", err)
	}

	workers := min(c.workers, len(functions))
	if workers < 2 {
		c.result = classify(functions, c.clusters, c.match, c.log)
		c.summary(len(functions))
		return c.result, nil
	}

	chunk := (len(functions) + workers - 1) / workers
	parts := make([]*Set, (len(functions)+chunk-1)/chunk)

	g, ctx := errgroup.WithContext(ctx)
	for i := range parts {
		start := i * chunk
		end := min(start+chunk, len(functions))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			parts[i] = classify(functions[start:end], c.clusters, c.match, c.log)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classify functions: %w", err)
	}

	for _, part := range parts {
		c.result.Union(part)
	}
	c.summary(len(functions))

	return c.result, nil
}

func (c *Classifier) summary(total int) {
	c.log.Info(
		"classification done",
		slog.Int("functions", total),
		slog.Int("clusters", len(c.clusters)),
		slog.Int("fragile", c.result.Len()),
	)
}
