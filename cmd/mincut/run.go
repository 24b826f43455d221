package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/internal/config"
	"github.com/katalvlaran/mincut/karger"
	"github.com/katalvlaran/mincut/loader"
)

// errNoGraph is returned when neither a file nor edges were given.
var errNoGraph = errors.New("no graph: pass a file, --edge entries or a config with graph settings")

type runFlags struct {
	configPath string
	trials     int
	concurrent bool
	seed       uint64
	edges      []string
	maxWorkers int
	confidence float64
}

func newRunCmd(gf *globalFlags) *cobra.Command {
	rf := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run [FILE]",
		Short: "Estimate the min cut of a graph",
		Long: `Estimate the minimum cut of the graph in FILE and/or the --edge entries.

FILE is read as YAML when it ends in .yaml/.yml and as an edge list
("a -- b" per line, # comments allowed) otherwise.

With --concurrent, --trials is the number of workers, each running exactly
one contraction. With --trials 0 the count is derived from --confidence.

Examples:
  mincut run graph.txt --trials 500
  mincut run graph.yaml --concurrent --trials 200 --max-workers 8
  mincut run --edge "1 -- 2" --edge "2 -- 3" --edge "3 -- 1" --seed 7`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rf.resolve(cmd, args)
			if err != nil {
				return err
			}

			return execRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), gf, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&rf.configPath, "config", "c", "", "YAML run configuration file")
	f.IntVarP(&rf.trials, "trials", "n", config.DefaultTrials, "Trials (sequential) or workers (concurrent); 0 derives it from --confidence")
	f.BoolVar(&rf.concurrent, "concurrent", false, "Run one worker per trial")
	f.Uint64Var(&rf.seed, "seed", 0, "Base seed for reproducible runs")
	f.StringArrayVarP(&rf.edges, "edge", "e", nil, `Inline edge entry "a -- b" (repeatable)`)
	f.IntVar(&rf.maxWorkers, "max-workers", 0, "Bound on concurrently running workers (0 = no bound)")
	f.Float64Var(&rf.confidence, "confidence", 0, "Target success confidence in (0,1) used when --trials is 0")

	return cmd
}

// resolve merges the config file (if any) with explicitly set flags.
func (rf *runFlags) resolve(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if rf.configPath != "" {
		loaded, err := config.Load(rf.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("trials") {
		cfg.Trials = rf.trials
	}
	if f.Changed("concurrent") {
		cfg.Concurrent = rf.concurrent
	}
	if f.Changed("seed") {
		seed := rf.seed
		cfg.Seed = &seed
	}
	if f.Changed("max-workers") {
		cfg.MaxWorkers = rf.maxWorkers
	}
	if f.Changed("confidence") {
		cfg.Confidence = rf.confidence
	}
	if len(args) == 1 {
		cfg.Graph.File = args[0]
	}
	cfg.Graph.Edges = append(cfg.Graph.Edges, rf.edges...)

	return cfg, cfg.Validate()
}

// execRun loads the graph, sizes the run and prints the report to out.
func execRun(out, logOut io.Writer, gf *globalFlags, cfg config.Config) error {
	log, err := gf.logger(logOut, cfg.LogLevel)
	if err != nil {
		return err
	}

	g, err := buildGraph(cfg.Graph)
	if err != nil {
		return err
	}
	log.Debug().
		Int("vertices", g.NumVertices()).
		Int("edges", g.NumEdges()).
		Msg("graph loaded")

	trials := cfg.Trials
	if trials == 0 {
		trials, err = karger.RecommendedTrials(g.NumVertices(), cfg.Confidence)
		if err != nil {
			return err
		}
		log.Info().Int("trials", trials).Float64("confidence", cfg.Confidence).Msg("trial count derived")
	}

	mode := karger.Sequential
	if cfg.Concurrent {
		mode = karger.Concurrent
	}
	opts := []karger.Option{karger.WithLogger(log), karger.WithMaxWorkers(cfg.MaxWorkers)}
	if cfg.Seed != nil {
		opts = append(opts, karger.WithSeed(*cfg.Seed))
	}

	res, err := karger.Run(g, trials, mode, opts...)
	if err != nil {
		return err
	}
	printResult(out, g, res)

	return nil
}

// buildGraph loads src.File (if set) and adds src.Edges on top.
func buildGraph(src config.Graph) (*core.Graph, error) {
	g := core.NewGraph()
	if src.File != "" {
		loaded, _, err := loader.LoadFile(src.File)
		if err != nil {
			return nil, err
		}
		g = loaded
	}
	if len(src.Edges) > 0 {
		added, err := g.AddEdges(src.Edges)
		if err != nil {
			return nil, err
		}
		if added != len(src.Edges) {
			return nil, fmt.Errorf("%d of %d --edge entries are not of the form \"a -- b\"", len(src.Edges)-added, len(src.Edges))
		}
	}
	if g.NumVertices() == 0 {
		return nil, errNoGraph
	}

	return g, nil
}

func printResult(w io.Writer, g *core.Graph, res *karger.Result) {
	mean, std := res.Distribution()
	fmt.Fprintf(w, "graph:     %d vertices, %d edges\n", g.NumVertices(), g.NumEdges())
	fmt.Fprintf(w, "mode:      %s (%d trials, seed %d)\n", res.Mode, len(res.Trials), res.Seed)
	fmt.Fprintf(w, "min cut:   %d\n", res.MinCut)
	fmt.Fprintf(w, "partition: {%s} | {%s}\n", strings.Join(res.Cut.Left, ", "), strings.Join(res.Cut.Right, ", "))
	if len(res.Trials) > 0 {
		fmt.Fprintf(w, "hits:      %d/%d (mean %.2f, std %.2f)\n", res.Hits(), len(res.Trials), mean, std)
	}
	fmt.Fprintf(w, "elapsed:   %s\n", res.Elapsed)
}
