package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lexigraph/artifact"
	"github.com/katalvlaran/lexigraph/config"
	"github.com/katalvlaran/lexigraph/dijkstra"
	"github.com/katalvlaran/lexigraph/loader"
	"github.com/katalvlaran/lexigraph/query"
	"github.com/katalvlaran/lexigraph/sparse"
	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Thesaurus relation graph builder and query tool",
		Long: `lexigraph turns a thesaurus file (term lines followed by continuation
lines of related terms) into a sparse relation graph, saves it as a
compressed artifact, and answers queries against that artifact:
shortest paths, degrees, set closures and higher-order related terms.

Settings come from defaults, an optional YAML file (--config) and
LEXIGRAPH_* environment variables; flags override all of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "config file path (YAML)")
	pf.StringVarP(&a.format, "output", "o", formatText, "output format (text, yaml, json)")
	pf.String("artifact", "", "artifact base path (files <base>.coo.zst and <base>.terms)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("metrics-out", "", "write Prometheus text metrics to this file on exit")
	bindFlag(a, pf.Lookup("artifact"), "artifact.base")
	bindFlag(a, pf.Lookup("log-level"), "log.level")
	bindFlag(a, pf.Lookup("metrics-out"), "metrics.output")

	cmd.AddCommand(
		buildCmd(a),
		pathCmd(a),
		degreeCmd(a),
		statsCmd(a),
		closureCmd(a),
		relatedCmd(a),
		referenceCmd(a),
		versionCmd(),
	)
	for _, sub := range cmd.Commands() {
		if sub.RunE != nil {
			sub.RunE = a.withFinish(sub.RunE)
		}
	}
	return cmd
}

func buildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [input]",
		Short: "Parse, filter and save a thesaurus as a graph artifact",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.cfg.Input.Path
			if len(args) == 1 {
				input = args[0]
			}
			if input == "" {
				return errors.New("no input file: pass one or set input.path")
			}

			opts := append(a.cfg.LoaderOptions(), loader.WithLogger(a.logger))
			rel, err := loader.Load(input, opts...)
			if err != nil {
				return err
			}
			clean, report := loader.Filter(rel, loader.WithFilterLogger(a.logger))
			a.recorder.AddDiscarded(report.Total())

			idx, g, err := sparse.Build(clean)
			if err != nil {
				return err
			}
			base := a.cfg.Artifact.Base
			if err = artifact.Save(base, idx, g, artifact.WithLogger(a.logger)); err != nil {
				return err
			}
			a.recorder.SetGraph(idx.Len(), g.EdgeCount())

			summary := buildSummary{
				Input:     input,
				Artifact:  base,
				Terms:     idx.Len(),
				Relations: rel.RelationCount(),
				Discarded: report.Total(),
				Triples:   g.NNZ(),
				Edges:     g.EdgeCount(),
				Symmetric: g.IsSymmetric(),
			}
			return a.render(cmd.OutOrStdout(), summary, func(w io.Writer) {
				fmt.Fprintf(w, "terms:      %d\n", summary.Terms)
				fmt.Fprintf(w, "relations:  %d (%d discarded)\n", summary.Relations, summary.Discarded)
				fmt.Fprintf(w, "edges:      %d (%d stored triples)\n", summary.Edges, summary.Triples)
				fmt.Fprintf(w, "symmetric:  %t\n", summary.Symmetric)
				fmt.Fprintf(w, "artifact:   %s\n", base)
			})
		},
	}
	f := cmd.Flags()
	f.String("delimiter", "", "field delimiter")
	f.String("marker", "", "continuation line marker")
	f.Int("skip-lines", 0, "header lines to skip")
	bindFlag(a, f.Lookup("delimiter"), "input.delimiter")
	bindFlag(a, f.Lookup("marker"), "input.continuation_marker")
	bindFlag(a, f.Lookup("skip-lines"), "input.skip_lines")
	return cmd
}

type buildSummary struct {
	Input     string `json:"input" yaml:"input"`
	Artifact  string `json:"artifact" yaml:"artifact"`
	Terms     int    `json:"terms" yaml:"terms"`
	Relations int    `json:"relations" yaml:"relations"`
	Discarded int    `json:"discarded" yaml:"discarded"`
	Triples   int    `json:"triples" yaml:"triples"`
	Edges     int    `json:"edges" yaml:"edges"`
	Symmetric bool   `json:"symmetric" yaml:"symmetric"`
}

func pathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Shortest directed path between two terms",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			p, err := eng.ShortestPath(args[0], args[1])
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), p, func(w io.Writer) {
				fmt.Fprintf(w, "%d: %s\n", p.Distance, joinPath(p.Terms))
			})
		},
	}
	cmd.Flags().Int("max-hops", 0, "hop cap, 0 disables it")
	bindFlag(a, cmd.Flags().Lookup("max-hops"), "query.max_hops")
	return cmd
}

func degreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "degree TERM...",
		Short: "Number of distinct related terms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			out := make([]query.TermDegree, 0, len(args))
			for _, term := range args {
				td, err := eng.TermDegree(term)
				if err != nil {
					return err
				}
				out = append(out, td)
			}
			return a.render(cmd.OutOrStdout(), out, func(w io.Writer) {
				for _, td := range out {
					fmt.Fprintf(w, "%s\t%d\n", td.Term, td.Degree)
				}
			})
		},
	}
}

type statsReport struct {
	query.Stats `yaml:",inline"`
	Lowest      []query.TermDegree `json:"lowest" yaml:"lowest"`
	Highest     []query.TermDegree `json:"highest" yaml:"highest"`
	Histogram   []int              `json:"histogram" yaml:"histogram"`
}

func statsCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Degree distribution of the whole graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			lo, hi := eng.Extremes(top)
			rep := statsReport{
				Stats:     eng.DegreeStats(),
				Lowest:    lo,
				Highest:   hi,
				Histogram: eng.Histogram(),
			}
			return a.render(cmd.OutOrStdout(), rep, func(w io.Writer) {
				s := rep.Stats
				fmt.Fprintf(w, "terms %d, edges %d, degree min %d max %d mean %.3f, isolated %d\n",
					s.Terms, s.Edges, s.Min, s.Max, s.Mean, s.Isolated)
				fmt.Fprintln(w, "lowest non-zero degree:")
				for _, td := range rep.Lowest {
					fmt.Fprintf(w, "  %s\t%d\n", td.Term, td.Degree)
				}
				fmt.Fprintln(w, "highest degree:")
				for _, td := range rep.Highest {
					fmt.Fprintf(w, "  %s\t%d\n", td.Term, td.Degree)
				}
			})
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "number of terms in each extreme list")
	return cmd
}

func closureCmd(a *app) *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:   "closure TERM",
		Short: "Set sizes of the growing neighbourhood of a term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			c, err := eng.Closure(args[0], iterations)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), c, func(w io.Writer) {
				for _, s := range c.Steps {
					fmt.Fprintf(w, "%d\t%d\n", s.Iteration, s.Size)
				}
				if c.Fixpoint {
					fmt.Fprintln(w, "fixpoint reached")
				}
			})
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", 0, "expansion rounds (0 = query.max_iterations)")
	return cmd
}

func relatedCmd(a *app) *cobra.Command {
	var order int
	cmd := &cobra.Command{
		Use:   "related TERM",
		Short: "Terms related at a given order (0 = direct)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := a.engine()
			if err != nil {
				return err
			}
			terms, err := eng.Related(args[0], order)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), terms, func(w io.Writer) {
				for _, t := range terms {
					fmt.Fprintln(w, t)
				}
			})
		},
	}
	cmd.Flags().IntVar(&order, "order", 0, "relation order")
	return cmd
}

type referenceResult struct {
	Path     []string `json:"path" yaml:"path"`
	Distance int64    `json:"distance" yaml:"distance"`
	Agrees   *bool    `json:"agrees_with_bfs,omitempty" yaml:"agrees_with_bfs,omitempty"`
}

// exampleGraph is the classic ten-city weighted example.
func exampleGraph() (dijkstra.Graph, []string) {
	return dijkstra.Graph{
		"A": {"B": 85, "C": 217, "E": 173},
		"B": {"A": 85, "F": 80},
		"C": {"A": 217, "G": 186, "H": 103},
		"D": {"H": 183},
		"E": {"A": 173, "J": 502},
		"F": {"B": 80, "I": 250},
		"G": {"C": 186},
		"H": {"C": 103, "D": 183, "J": 167},
		"I": {"F": 250, "J": 84},
		"J": {"I": 84, "H": 167, "E": 502},
	}, []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
}

func referenceCmd(a *app) *cobra.Command {
	var example bool
	cmd := &cobra.Command{
		Use:   "reference FROM TO",
		Short: "Dijkstra reference path (unit weights over the artifact, or the built-in example)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := args[0], args[1]
			var res referenceResult

			if example {
				g, nodes := exampleGraph()
				a.logger.Debug("reference example", "symmetric", dijkstra.CheckSymmetry(g))
				r, err := dijkstra.ShortestPath(g, nodes, from, to)
				if err != nil {
					return err
				}
				res = referenceResult{Path: r.Path, Distance: r.Distance}
			} else {
				eng, err := a.engine()
				if err != nil {
					return err
				}
				g, nodes, err := dijkstra.FromSparse(eng.Index(), eng.Graph())
				if err != nil {
					return err
				}
				r, err := dijkstra.ShortestPath(g, nodes, from, to)
				if err != nil {
					return err
				}
				res = referenceResult{Path: r.Path, Distance: r.Distance}

				p, err := eng.ShortestPath(from, to, query.WithPathMaxHops(0))
				agrees := err == nil && int64(p.Distance) == r.Distance
				res.Agrees = &agrees
				if !agrees {
					a.logger.Warn("reference and BFS distances differ", "from", from, "to", to, "err", err)
				}
			}

			return a.render(cmd.OutOrStdout(), res, func(w io.Writer) {
				fmt.Fprintf(w, "%s: %s\n", strconv.FormatInt(res.Distance, 10), joinPath(res.Path))
			})
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "use the built-in ten-node weighted example instead of the artifact")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// no config or metrics needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}
