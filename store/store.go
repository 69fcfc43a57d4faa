// Package store provides SQLite-backed persistence for road graph records
// and materializes them into a core.Graph.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/routegraph/core"
)

//go:embed schema.sql
var schemaSQL string

//go:embed pragmas.sql
var pragmasSQL string

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

var (
	// ErrNegativeWeight is returned when an edge with weight < 0 is inserted.
	ErrNegativeWeight = errors.New("store: negative edge weight")

	// ErrEmptyPath is returned by Open when no database path is given.
	ErrEmptyPath = errors.New("store: database path is empty")
)

// DB wraps a SQLite connection holding node and edge rows.
type DB struct {
	conn *sql.DB
	path string
	log  *logrus.Logger
}

// Option configures a DB at Open time.
type Option func(*DB)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(log *logrus.Logger) Option {
	return func(db *DB) {
		if log != nil {
			db.log = log
		}
	}
}

// Open opens or creates the database at path and applies the schema.
func Open(path string, opts ...Option) (*DB, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	if path == MemoryPath {
		// every pooled connection would otherwise see its own empty database
		conn.SetMaxOpenConns(1)
	}

	db := &DB{conn: conn, path: path, log: discardLogger()}
	for _, opt := range opts {
		opt(db)
	}

	for _, pragma := range strings.Split(pragmasSQL, "\n") {
		pragma = strings.TrimSpace(pragma)
		if pragma == "" || strings.HasPrefix(pragma, "--") {
			continue
		}
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("applying pragma %q: %w", pragma, err)
		}
	}

	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	db.log.WithField("path", path).Debug("store opened")

	return db, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the path the database was opened with.
func (db *DB) Path() string { return db.path }

// InsertNode stores n, replacing any row with the same id.
func (db *DB) InsertNode(ctx context.Context, n core.Node) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO nodes (id, x, y) VALUES (?, ?, ?)`,
		n.ID, n.X, n.Y)
	if err != nil {
		return fmt.Errorf("inserting node %d: %w", n.ID, err)
	}

	return nil
}

// InsertEdge appends e. Parallel edges are kept. Endpoints are not checked
// against the nodes table.
func (db *DB) InsertEdge(ctx context.Context, e core.Edge) error {
	if e.Weight < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.NodeA, e.NodeB, e.Weight)
	}

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO edges (node_a_id, node_b_id, weight) VALUES (?, ?, ?)`,
		e.NodeA, e.NodeB, e.Weight)
	if err != nil {
		return fmt.Errorf("inserting edge %d→%d: %w", e.NodeA, e.NodeB, err)
	}

	return nil
}

// Nodes returns every node row ordered by id.
func (db *DB) Nodes(ctx context.Context) ([]core.Node, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT id, x, y FROM nodes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying nodes: %w", err)
	}
	defer rows.Close()

	var nodes []core.Node
	for rows.Next() {
		var n core.Node
		if err := rows.Scan(&n.ID, &n.X, &n.Y); err != nil {
			return nil, fmt.Errorf("scanning node: %w", err)
		}
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating nodes: %w", err)
	}

	return nodes, nil
}

// Edges returns every edge row in insertion order.
func (db *DB) Edges(ctx context.Context) ([]core.Edge, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT node_a_id, node_b_id, weight FROM edges ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying edges: %w", err)
	}
	defer rows.Close()

	var edges []core.Edge
	for rows.Next() {
		var e core.Edge
		if err := rows.Scan(&e.NodeA, &e.NodeB, &e.Weight); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating edges: %w", err)
	}

	return edges, nil
}

// LoadGraph reads all rows into a new graph owned by the caller.
// Edges whose endpoints have no node row are loaded as-is.
func (db *DB) LoadGraph(ctx context.Context) (*core.Graph, error) {
	nodes, err := db.Nodes(ctx)
	if err != nil {
		return nil, err
	}
	edges, err := db.Edges(ctx)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for _, n := range nodes {
		g.AddNode(n)
	}
	dangling := 0
	for _, e := range edges {
		if !g.HasNode(e.NodeA) || !g.HasNode(e.NodeB) {
			dangling++
		}
		g.AddEdge(e)
	}

	entry := db.log.WithFields(logrus.Fields{
		"nodes": len(nodes),
		"edges": len(edges),
	})
	if dangling > 0 {
		entry.WithField("dangling_edges", dangling).Warn("edges reference unknown nodes")
	}
	entry.Debug("graph loaded")

	return g, nil
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
