package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains the directory layout the tool works in.
// This is the single source of truth for the conventional data layout:
//
//	<base>/
//	  ├── data/
//	  │   ├── raw/         (input files as delivered)
//	  │   └── processed/   (cleaned output files)
//	  └── logs/
type Paths struct {
	BaseDir      string
	DataDir      string
	RawDir       string
	ProcessedDir string
	LogsDir      string
}

// GetPaths returns the conventional layout rooted at base. An empty base
// resolves to the current working directory, since the tool is run from
// the dataset's directory.
func GetPaths(base string) (*Paths, error) {
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		base = wd
	}

	dataDir := filepath.Join(base, "data")
	return &Paths{
		BaseDir:      base,
		DataDir:      dataDir,
		RawDir:       filepath.Join(dataDir, "raw"),
		ProcessedDir: filepath.Join(dataDir, "processed"),
		LogsDir:      filepath.Join(base, "logs"),
	}, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.RawDir,
		p.ProcessedDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	slog.Debug("data layout ready",
		slog.String("base", p.BaseDir),
		slog.String("raw", p.RawDir),
		slog.String("processed", p.ProcessedDir),
		slog.String("logs", p.LogsDir))

	return nil
}

// RawFile returns the path of a file inside the raw data directory
func (p *Paths) RawFile(name string) string {
	return filepath.Join(p.RawDir, name)
}

// ProcessedFile returns the path of a file inside the processed directory
func (p *Paths) ProcessedFile(name string) string {
	return filepath.Join(p.ProcessedDir, name)
}

// LogFile returns the path of a file inside the logs directory
func (p *Paths) LogFile(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
