package adapter

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	m "github.com/mouse-blink/docslice/internal/model"
)

// GapStore reads and writes gap tables in the "start:end," line format.
type GapStore interface {
	Load(path m.Path) (m.GapTable, error)
	Save(path m.Path, gaps []m.Interval) error
}

// LocalGapStore is the file-backed GapStore.
type LocalGapStore struct{}

// NewLocalGapStore creates a new LocalGapStore.
func NewLocalGapStore() *LocalGapStore {
	return &LocalGapStore{}
}

// Load parses a gap table file. Entries are "start:end" pairs separated by
// commas and/or whitespace; a malformed entry aborts the whole load.
func (s *LocalGapStore) Load(path m.Path) (m.GapTable, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read gap table %s: %w", path, err)
	}

	table := m.GapTable{}

	entries := strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r' || r == ' ' || r == '\t'
	})

	for _, entry := range entries {
		from, to, err := parseGapEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("gap table %s: %w", path, err)
		}

		table[from] = to
	}

	return table, nil
}

// Save writes one "start:end," entry per line, the same format Load accepts.
func (s *LocalGapStore) Save(path m.Path, gaps []m.Interval) error {
	var b strings.Builder

	for _, gap := range gaps {
		fmt.Fprintf(&b, "%d:%d,\n", gap.Start, gap.End)
	}

	if err := os.WriteFile(string(path), []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("write gap table %s: %w", path, err)
	}

	return nil
}

func parseGapEntry(entry string) (int, int, error) {
	start, end, ok := strings.Cut(entry, ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed entry %q", entry)
	}

	from, err := strconv.Atoi(start)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed entry %q", entry)
	}

	to, err := strconv.Atoi(end)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed entry %q", entry)
	}

	return from, to, nil
}
