package result

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

const (
	// FilePrefix is the name the extraction harness gives its run records.
	FilePrefix = "artwork_imports_eval"

	timestampLayout = "20060102_150405"
	archiveSuffix   = ".zst"
)

var (
	timestampPattern = regexp.MustCompile(`(\d{8}_\d{6})`)
	epoch            = time.Unix(0, 0).UTC()
)

// LoadAll reads every run record in dir, oldest first. A file that fails
// to decode aborts the load.
func LoadAll(dir string) ([]*RunRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading results dir: %w", err)
	}
	var records []*RunRecord
	for _, e := range entries {
		if e.IsDir() || !IsRecordFile(e.Name()) {
			continue
		}
		rec, err := ReadRunRecord(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded run record", "file", rec.Filename, "model", rec.Model, "timestamp", rec.Timestamp)
		records = append(records, rec)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}

// IsRecordFile reports whether name looks like a stored run record.
func IsRecordFile(name string) bool {
	name = strings.TrimSuffix(name, archiveSuffix)
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

func ReadRunRecord(path string) (*RunRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run record: %w", err)
	}
	if strings.HasSuffix(path, archiveSuffix) {
		if data, err = decompress(data); err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", path, err)
		}
	}
	rec, err := DecodeRunRecord(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	rec.Filename = filepath.Base(path)
	ts, ok := ParseTimestamp(rec.Filename)
	if !ok {
		slog.Warn("no timestamp in run record name, sorting it first", "file", rec.Filename)
	}
	rec.Timestamp = ts
	return rec, nil
}

// ParseTimestamp extracts the first YYYYMMDD_HHMMSS stamp from name. It
// returns the Unix epoch and false when there is none or it is not a date.
func ParseTimestamp(name string) (time.Time, bool) {
	m := timestampPattern.FindString(name)
	if m == "" {
		return epoch, false
	}
	ts, err := time.ParseInLocation(timestampLayout, m, time.UTC)
	if err != nil {
		return epoch, false
	}
	return ts, true
}

// RecordFilename is the name the harness uses for a run produced at ts.
func RecordFilename(ts time.Time) string {
	return fmt.Sprintf("%s_%s.yaml", FilePrefix, ts.UTC().Format(timestampLayout))
}

// WriteRunRecord stores rec in dir under rec.Filename, or a harness-style
// name derived from rec.Timestamp when Filename is empty.
func WriteRunRecord(dir string, rec *RunRecord) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating results dir: %w", err)
	}
	name := rec.Filename
	if name == "" {
		name = RecordFilename(rec.Timestamp)
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshaling run record: %w", err)
	}
	if strings.HasSuffix(name, archiveSuffix) {
		if data, err = compress(data); err != nil {
			return "", fmt.Errorf("compressing run record: %w", err)
		}
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing run record: %w", err)
	}
	return path, nil
}

func decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

func compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}
