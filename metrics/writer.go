package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists collected metrics as CSV under a timestamped run directory.
type Writer struct {
	baseDir string
}

// NewWriter creates the run directory and returns a writer for it.
func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the run directory.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteTurnRecords writes one row per turn to turns.csv.
func (w *Writer) WriteTurnRecords(turns []TurnMetric) error {
	path := filepath.Join(w.baseDir, "turns.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create turns file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"turn", "candidates", "placements", "paint_spent", "disrupted", "elapsed"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write turns header: %w", err)
	}

	for _, turn := range turns {
		row := []string{
			strconv.Itoa(turn.Turn),
			strconv.Itoa(turn.Candidates),
			strconv.Itoa(turn.Placements),
			strconv.Itoa(turn.PaintSpent),
			strconv.FormatBool(turn.Disrupted),
			turn.Elapsed.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write turn row: %w", err)
		}
	}
	return nil
}
