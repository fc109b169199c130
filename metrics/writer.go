package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// CensusRecord counts the move sequences reaching one ply below the census root.
type CensusRecord struct {
	Ply          int
	Lines        int // every move order counts, transpositions included
	InProgress   int
	PlayerWins   int
	ComputerWins int
	Draws        int
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteCensus(records []CensusRecord) error {
	path := filepath.Join(w.baseDir, "census.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create census file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"ply", "lines", "in_progress", "player_wins", "computer_wins", "draws"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write census header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Ply),
			strconv.Itoa(record.Lines),
			strconv.Itoa(record.InProgress),
			strconv.Itoa(record.PlayerWins),
			strconv.Itoa(record.ComputerWins),
			strconv.Itoa(record.Draws),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write census row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteTreeMetric(metric TreeMetric) error {
	path := filepath.Join(w.baseDir, "tree_metrics.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create tree metrics file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"duration", "nodes", "terminals", "expansions", "transposition_hits"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write tree metrics header: %w", err)
	}

	row := []string{
		metric.Duration.String(),
		strconv.Itoa(metric.Nodes),
		strconv.Itoa(metric.Terminals),
		strconv.Itoa(metric.Expansions),
		strconv.Itoa(metric.TranspositionHits),
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write tree metrics row: %w", err)
	}

	writer.Flush()
	return writer.Error()
}
