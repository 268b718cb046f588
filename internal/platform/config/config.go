package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"sdnscreen/internal/source"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string
	LogLevel string
	Source   Source
}

// Source locates the SDN list on disk and upstream.
type Source struct {
	Path         string
	ArchiveURL   string
	DataDir      string
	Force        bool
	FetchTimeout time.Duration
}

// Options converts the source settings into preparation options.
func (s Source) Options() source.Options {
	return source.Options{
		URL:    s.ArchiveURL,
		Dir:    s.DataDir,
		Member: source.DefaultMember,
		Force:  s.Force,
	}
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	addr := os.Getenv("SDN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("SDN_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	path := os.Getenv("SDN_PATH")
	if path == "" {
		path = filepath.Join(dataDir, source.DefaultMember)
	}
	archiveURL := os.Getenv("SDN_ARCHIVE_URL")
	if archiveURL == "" {
		archiveURL = source.DefaultURL
	}
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	force := false
	if v := os.Getenv("SDN_FORCE"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return Server{}, fmt.Errorf("parse SDN_FORCE: %w", err)
		}
		force = parsed
	}

	timeout := 2 * time.Minute
	if v := os.Getenv("SDN_FETCH_TIMEOUT"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return Server{}, fmt.Errorf("parse SDN_FETCH_TIMEOUT: %w", err)
		}
		if parsed <= 0 {
			return Server{}, fmt.Errorf("SDN_FETCH_TIMEOUT must be positive, got %s", v)
		}
		timeout = parsed
	}

	return Server{
		Addr:     addr,
		LogLevel: level,
		Source: Source{
			Path:         path,
			ArchiveURL:   archiveURL,
			DataDir:      dataDir,
			Force:        force,
			FetchTimeout: timeout,
		},
	}, nil
}
