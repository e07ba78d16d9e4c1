package maze

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// Record is everything needed to replay a generation run
type Record struct {
	Seed        int64  `yaml:"seed"`
	RunID       string `yaml:"run_id"`
	Rows        int    `yaml:"rows"`
	Cols        int    `yaml:"cols"`
	EndStrategy string `yaml:"end_strategy"`
	Board       string `yaml:"board"`
}

// NewRecord captures the generator's current grid along with its parameters.
// A generator driven by an injected source has no seed to replay from.
func NewRecord(generator *Generator) (*Record, error) {
	if !generator.Seeded() {
		return nil, fmt.Errorf("%w: run %s", ErrNotReplayable, generator.RunID())
	}

	snapshot := generator.Snapshot()
	return &Record{
		Seed:        generator.Seed(),
		RunID:       generator.RunID(),
		Rows:        snapshot.Rows(),
		Cols:        snapshot.Cols(),
		EndStrategy: generator.EndStrategy().String(),
		Board:       snapshot.String(),
	}, nil
}

func (record *Record) Serialize() (string, error) {
	out, err := yaml.Marshal(record)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func LoadRecord(in string) (*Record, error) {
	var record Record
	if err := yaml.Unmarshal([]byte(in), &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return &record, nil
}

func LoadRecordFile(path string) (*Record, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadRecord(string(in))
}

// Snapshot parses the stored board, checking it against the stored dimensions
func (record *Record) Snapshot() (Snapshot, error) {
	snapshot, err := ParseSnapshot(record.Board)
	if err != nil {
		return Snapshot{}, err
	}
	if snapshot.Rows() != record.Rows || snapshot.Cols() != record.Cols {
		return Snapshot{}, fmt.Errorf(
			"%w: board is %dx%d, record says %dx%d",
			ErrMalformedRecord, snapshot.Rows(), snapshot.Cols(), record.Rows, record.Cols,
		)
	}
	return snapshot, nil
}

// Options returns generator options reproducing the recorded run
func (record *Record) Options() (Options, error) {
	strategy, err := ParseEndStrategy(record.EndStrategy)
	if err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return Options{
		Rows:        record.Rows,
		Cols:        record.Cols,
		Seed:        record.Seed,
		EndStrategy: strategy,
	}, nil
}

// Filename is the name the record is saved under in a snapshot directory
func (record *Record) Filename(t time.Time) string {
	filenameBuilder := strings.Builder{}
	filenameBuilder.WriteString(t.Format("20060102_150405_"))
	filenameBuilder.WriteString(record.RunID)
	filenameBuilder.WriteString(".yaml")
	return filenameBuilder.String()
}

// Save writes the record into dir, creating the directory when missing, and
// returns the path written
func (record *Record) Save(dir string, t time.Time) (string, error) {
	stat, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		if err := os.MkdirAll(dir, 0777); err != nil {
			return "", err
		}
	} else if !stat.Mode().IsDir() {
		return "", fmt.Errorf("%s is not a directory; cannot save snapshots to it", dir)
	}

	out, err := record.Serialize()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, record.Filename(t))
	if err := os.WriteFile(path, []byte(out), 0666); err != nil {
		return "", err
	}
	return path, nil
}
