package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/dsanim/internal/metrics"
)

var (
	// ErrRunNotFound indicates a run ID with no stored metadata.
	ErrRunNotFound = errors.New("storage: run not found")

	// ErrSeriesLength indicates occupancy series of unequal length.
	ErrSeriesLength = errors.New("storage: series lengths differ")
)

const (
	metadataFile  = "metadata.json"
	occupancyFile = "occupancy.csv"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string                    `json:"id"`
	Timestamp  time.Time                 `json:"timestamp"`
	Seed       uint64                    `json:"seed"`
	FPS        float64                   `json:"fps"`
	Ticks      int                       `json:"ticks"`
	Preset     string                    `json:"preset,omitempty"`
	Structures []string                  `json:"structures"`
	Settled    map[string]int            `json:"settled"`
	Metrics    map[string]float64        `json:"metrics"`
	Events     map[string]metrics.Counts `json:"events,omitempty"`
}

// Run is everything persisted for one headless run.
type Run struct {
	Meta   RunMetadata
	Frames []uint64
	// Series maps structure name to settled counts aligned with Frames.
	Series map[string][]float64
}

// Save writes meta and the occupancy series under a fresh run ID, which it returns.
func (s *Store) Save(run *Run) (string, error) {
	for name, ser := range run.Series {
		if len(ser) != len(run.Frames) {
			return "", fmt.Errorf("%w: %s has %d samples for %d frames", ErrSeriesLength, name, len(ser), len(run.Frames))
		}
	}

	meta := run.Meta
	meta.ID = uuid.NewString()
	meta.Timestamp = s.now()
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, occupancyFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeSeries(csvFile, run.Frames, run.Series); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func writeSeries(out io.Writer, frames []uint64, series map[string][]float64) error {
	names := make([]string, 0, len(series))
	for n := range series {
		names = append(names, n)
	}
	slices.Sort(names)

	w := csv.NewWriter(out)
	if err := w.Write(append([]string{"frame"}, names...)); err != nil {
		return err
	}
	for i, f := range frames {
		row := []string{strconv.FormatUint(f, 10)}
		for _, n := range names {
			row = append(row, strconv.FormatFloat(series[n][i], 'f', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first. Unreadable entries are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	slices.SortFunc(runs, func(a, b RunMetadata) int { return b.Timestamp.Compare(a.Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSeries reads the occupancy CSV back. Malformed cells are skipped.
func (s *Store) LoadSeries(runID string) ([]uint64, map[string][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, occupancyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	series := make(map[string][]float64)
	if len(records) < 2 {
		return []uint64{}, series, nil
	}

	header := records[0]
	frames := make([]uint64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(header) {
			continue
		}
		f, err := strconv.ParseUint(record[0], 10, 64)
		if err != nil {
			continue
		}
		frames = append(frames, f)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				val = 0
			}
			series[header[j]] = append(series[header[j]], val)
		}
	}
	return frames, series, nil
}

// ExportJSON writes the metadata and series of a stored run as one JSON document.
func (s *Store) ExportJSON(runID string, out io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	frames, series, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}

	data := struct {
		RunMetadata
		Frames []uint64             `json:"frames"`
		Series map[string][]float64 `json:"series"`
	}{*meta, frames, series}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
