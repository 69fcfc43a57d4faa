// Command routegraph stores road graph records in SQLite and answers
// shortest-path queries over them.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/dijkstra"
	"github.com/katalvlaran/routegraph/internal/logging"
	"github.com/katalvlaran/routegraph/store"
)

const (
	envDB        = "ROUTEGRAPH_DB"
	envLogLevel  = "ROUTEGRAPH_LOG_LEVEL"
	envLogFormat = "ROUTEGRAPH_LOG_FORMAT"
)

var (
	dbPath    string
	logLevel  string
	logFormat string

	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:           "routegraph",
	Short:         "Shortest paths over a stored road graph",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Manage node records",
}

// Leaf commands parse their own flags so that negative integers stay
// positional; see parseCommandLine.
var nodeAddCmd = &cobra.Command{
	Use:                "add ID X Y",
	Short:              "Insert or replace a node",
	RunE:               runNodeAdd,
	DisableFlagParsing: true,
}

var edgeCmd = &cobra.Command{
	Use:   "edge",
	Short: "Manage edge records",
}

var edgeAddCmd = &cobra.Command{
	Use:                "add A B WEIGHT",
	Short:              "Append an undirected edge",
	RunE:               runEdgeAdd,
	DisableFlagParsing: true,
}

var pathCmd = &cobra.Command{
	Use:                "path FROM TO",
	Short:              "Print the minimum total weight between two nodes",
	RunE:               runPath,
	DisableFlagParsing: true,
}

var tableCmd = &cobra.Command{
	Use:                "table FROM",
	Short:              "Print the distance from one node to every node",
	RunE:               runTable,
	DisableFlagParsing: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", envOr(envDB, "routegraph.db"), "Path to the SQLite database")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr(envLogLevel, "info"), "Log level")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", envOr(envLogFormat, "text"), "Log format (text|json)")

	nodeCmd.AddCommand(nodeAddCmd)
	edgeCmd.AddCommand(edgeAddCmd)

	rootCmd.AddCommand(nodeCmd)
	rootCmd.AddCommand(edgeCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(tableCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runNodeAdd(cmd *cobra.Command, args []string) error {
	vals, err := parseCommandLine(cmd, args, "id", "x", "y")
	if errors.Is(err, pflag.ErrHelp) {
		return cmd.Help()
	}
	if err != nil {
		return err
	}

	return withDB(cmd.Context(), func(ctx context.Context, db *store.DB) error {
		n := core.Node{ID: vals[0], X: vals[1], Y: vals[2]}
		if err := db.InsertNode(ctx, n); err != nil {
			return err
		}
		log.WithField("id", n.ID).Info("node stored")

		return nil
	})
}

func runEdgeAdd(cmd *cobra.Command, args []string) error {
	vals, err := parseCommandLine(cmd, args, "a", "b", "weight")
	if errors.Is(err, pflag.ErrHelp) {
		return cmd.Help()
	}
	if err != nil {
		return err
	}

	return withDB(cmd.Context(), func(ctx context.Context, db *store.DB) error {
		e := core.Edge{NodeA: vals[0], NodeB: vals[1], Weight: vals[2]}
		if err := db.InsertEdge(ctx, e); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"a": e.NodeA, "b": e.NodeB, "weight": e.Weight}).Info("edge stored")

		return nil
	})
}

func runPath(cmd *cobra.Command, args []string) error {
	vals, err := parseCommandLine(cmd, args, "from", "to")
	if errors.Is(err, pflag.ErrHelp) {
		return cmd.Help()
	}
	if err != nil {
		return err
	}

	return withDB(cmd.Context(), func(ctx context.Context, db *store.DB) error {
		g, err := db.LoadGraph(ctx)
		if err != nil {
			return err
		}
		d := dijkstra.ShortestPath(g, vals[0], vals[1])
		fmt.Fprintln(cmd.OutOrStdout(), formatDistance(d))

		return nil
	})
}

func runTable(cmd *cobra.Command, args []string) error {
	vals, err := parseCommandLine(cmd, args, "from")
	if errors.Is(err, pflag.ErrHelp) {
		return cmd.Help()
	}
	if err != nil {
		return err
	}

	return withDB(cmd.Context(), func(ctx context.Context, db *store.DB) error {
		g, err := db.LoadGraph(ctx)
		if err != nil {
			return err
		}
		dist := dijkstra.Distances(g, vals[0])
		out := cmd.OutOrStdout()
		for _, id := range g.NodeIDs() {
			fmt.Fprintf(out, "%d\t%s\n", id, formatDistance(dist[id]))
		}

		return nil
	})
}

// withDB opens the configured database for the duration of fn.
func withDB(ctx context.Context, fn func(context.Context, *store.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := store.Open(dbPath, store.WithLogger(log))
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, db)
}

// parseCommandLine parses the flags in raw, builds the logger and returns
// the positional arguments as integers. Leaf commands disable cobra's flag
// parsing because pflag would read a token like "-5" as a shorthand flag;
// here any token that parses as an integer is positional.
func parseCommandLine(cmd *cobra.Command, raw []string, names ...string) ([]int64, error) {
	flagArgs, positional := splitArgs(cmd, raw)

	cmd.InheritedFlags() // merges the root's persistent flags into cmd.Flags()
	fs := cmd.Flags()
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if help, _ := fs.GetBool("help"); help {
		// commands are reused between Execute calls
		_ = fs.Set("help", "false")

		return nil, pflag.ErrHelp
	}

	if len(positional) != len(names) {
		return nil, fmt.Errorf("accepts %d arg(s), received %d", len(names), len(positional))
	}

	l, err := logging.New(cmd.ErrOrStderr(), logging.Config{Level: logLevel, Format: logFormat})
	if err != nil {
		return nil, err
	}
	log = l

	return parseInts(positional, names...)
}

// splitArgs separates flag tokens (with their values) from positional ones.
// Integers, including negative ones, are always positional, as is
// everything after "--".
func splitArgs(cmd *cobra.Command, raw []string) (flagArgs, positional []string) {
	for i := 0; i < len(raw); i++ {
		a := raw[i]
		switch {
		case a == "--":
			return flagArgs, append(positional, raw[i+1:]...)
		case !strings.HasPrefix(a, "-") || isInt(a):
			positional = append(positional, a)
		default:
			flagArgs = append(flagArgs, a)
			if strings.Contains(a, "=") {
				continue
			}
			name := strings.TrimLeft(a, "-")
			var f *pflag.Flag
			if strings.HasPrefix(a, "--") {
				f = cmd.Flags().Lookup(name)
			} else if len(name) == 1 {
				f = cmd.Flags().ShorthandLookup(name)
			}
			if f == nil {
				f = cmd.InheritedFlags().Lookup(name)
			}
			if f != nil && f.NoOptDefVal == "" && i+1 < len(raw) {
				i++
				flagArgs = append(flagArgs, raw[i])
			}
		}
	}

	return flagArgs, positional
}

func isInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)

	return err == nil
}

func formatDistance(d int64) string {
	if d == dijkstra.Unreachable {
		return "unreachable"
	}

	return strconv.FormatInt(d, 10)
}

func parseInts(args []string, names ...string) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", names[i], a, err)
		}
		out[i] = v
	}

	return out, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
