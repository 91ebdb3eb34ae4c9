package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// RunLog records statistics for one run of the frame loop.
type RunLog struct {
	Timestamp time.Time `json:"timestamp"`
	Title     string    `json:"title"`
	Frames    int       `json:"frames"`
	Seconds   float64   `json:"seconds"`
	AvgFPS    float64   `json:"avg_fps"`
	Sprites   int       `json:"sprites"`
	Error     string    `json:"error,omitempty"`
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
// Errors are logged but never stop the program.
func saveRunLog(rl RunLog, logger *slog.Logger) {
	dir, err := runLogDir()
	if err != nil {
		logger.Warn("run log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()

	data, err := json.Marshal(rl)
	if err != nil {
		logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		logger.Warn("run log: write failed", "error", err)
	}
}

// runLogDir returns the directory where run logs are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/sprite-ecs,
// defaulting to ~/.local/share/sprite-ecs.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "sprite-ecs"), nil
}
