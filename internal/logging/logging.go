// Package logging builds the logrus logger shared by the CLI and store.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config controls level and output format.
type Config struct {
	Level  string // panic|fatal|error|warn|info|debug|trace
	Format string // text|json
}

// New returns a logger writing to w according to cfg.
// An empty level means info; an empty format means text.
func New(w io.Writer, cfg Config) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(w)

	level := logrus.InfoLevel
	if s := strings.TrimSpace(cfg.Level); s != "" {
		var err error
		level, err = logrus.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
	}
	log.SetLevel(level)

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	return log, nil
}
