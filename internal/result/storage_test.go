package result_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/artbench/internal/result"
	"github.com/signalnine/artbench/internal/selection"
)

const symbolKeyRecord = `---
:model: claude-sonnet-4-20250514
:system_prompt: You are an expert in extracting and formatting artwork data.
:output: "[]"
:evaluation:
  :valid_json: true
  :golden: false
  :golden_case_insensitive: true
  :row_count: 2
  :record_count: 2
  :parsed_percentage: 100.0
  :valid_record_count: 1
  :valid_record_percentage: 50.0
  :validation_error_count: 3
  :duration_seconds: 12.5
  :records_per_second: 0.16
  :seconds_per_record: 6.25
  :average_llm_judgement: 2.75
`

func writeRaw(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestReadRunRecordSymbolKeys(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "artwork_imports_eval_20250601_101500.yaml", symbolKeyRecord)

	rec, err := result.ReadRunRecord(filepath.Join(dir, "artwork_imports_eval_20250601_101500.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "claude-sonnet-4-20250514", rec.Model)
	assert.Equal(t, "artwork_imports_eval_20250601_101500.yaml", rec.Filename)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 15, 0, 0, time.UTC), rec.Timestamp)
	assert.True(t, rec.Evaluation.ValidJSON)
	assert.True(t, rec.Evaluation.GoldenCaseInsensitive)
	assert.Equal(t, 2, rec.Evaluation.RowCount)
	assert.Equal(t, 3, rec.Evaluation.ValidationErrorCount)
	assert.InDelta(t, 2.75, rec.Evaluation.AverageLLMJudgement, 1e-9)
	assert.InDelta(t, 0.16, rec.Evaluation.RecordsPerSecond, 1e-9)
}

func TestDecodeCoercesMetrics(t *testing.T) {
	rec, err := result.DecodeRunRecord([]byte(`
model: gpt-4.1
extra_field: ignored
evaluation:
  row_count: "12"
  record_count: 10.0
  records_per_second: fast
  duration_seconds: "8.5"
  average_llm_judgement: ~
`))
	require.NoError(t, err)

	ev := rec.Evaluation
	assert.Equal(t, 12, ev.RowCount)
	assert.Equal(t, 10, ev.RecordCount)
	assert.Zero(t, ev.RecordsPerSecond)
	assert.InDelta(t, 8.5, ev.DurationSeconds, 1e-9)
	assert.Zero(t, ev.AverageLLMJudgement)
	assert.Zero(t, ev.ValidRecordPercentage)
}

func TestDecodeZeroRowCount(t *testing.T) {
	rec, err := result.DecodeRunRecord([]byte(`
:model: o3-mini
:evaluation:
  :row_count: 0
  :record_count: 2
  :parsed_percentage: .Inf
  :valid_record_percentage: .NaN
  :seconds_per_record: -.Inf
`))
	require.NoError(t, err)

	assert.Zero(t, rec.Evaluation.ParsedPercentage)
	assert.Zero(t, rec.Evaluation.ValidRecordPercentage)
	assert.Zero(t, rec.Evaluation.SecondsPerRecord)
	assert.Equal(t, 2, rec.Evaluation.RecordCount)
}

func TestDecodeOutOfRangeCount(t *testing.T) {
	rec, err := result.DecodeRunRecord([]byte(`
model: gpt-4.1
evaluation:
  row_count: 1e30
  record_count: -1e30
  validation_error_count: 7.9
`))
	require.NoError(t, err)

	assert.Zero(t, rec.Evaluation.RowCount)
	assert.Zero(t, rec.Evaluation.RecordCount)
	assert.Equal(t, 7, rec.Evaluation.ValidationErrorCount)
}

func TestDecodeNonMappingEvaluation(t *testing.T) {
	rec, err := result.DecodeRunRecord([]byte("model: a\nevaluation: pending\n"))
	require.NoError(t, err)
	assert.Equal(t, result.Evaluation{}, rec.Evaluation)
}

func TestDecodeMalformed(t *testing.T) {
	for name, body := range map[string]string{
		"empty":    "",
		"scalar":   "just a string",
		"sequence": "- a\n- b\n",
		"syntax":   "model: [unclosed",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := result.DecodeRunRecord([]byte(body))
			assert.ErrorIs(t, err, result.ErrMalformedRecord)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		want   time.Time
		wantOK bool
	}{
		{"artwork_imports_eval_20250102_030405.yaml", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), true},
		{"run_20240229_235959_retry_20250101_000000.yaml", time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), true},
		{"notes.yaml", time.Unix(0, 0).UTC(), false},
		{"eval_20251399_250000.yaml", time.Unix(0, 0).UTC(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := result.ParseTimestamp(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestLoadAllSortsChronologically(t *testing.T) {
	dir := t.TempDir()
	t2 := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)
	t1 := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	_, err := result.WriteRunRecord(dir, &result.RunRecord{Model: "late", Timestamp: t2})
	require.NoError(t, err)
	_, err = result.WriteRunRecord(dir, &result.RunRecord{Model: "early", Timestamp: t1})
	require.NoError(t, err)
	writeRaw(t, dir, "handmade.yaml", "model: undated\n")
	writeRaw(t, dir, "README.md", "not a record")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	records, err := result.LoadAll(dir)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "undated", records[0].Model)
	assert.Equal(t, "early", records[1].Model)
	assert.Equal(t, "late", records[2].Model)
	assert.Equal(t, result.RecordFilename(t1), records[1].Filename)
}

func TestLoadAllKeepsFileOrderForEqualTimestamps(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "b_20250101_000000.yaml", "model: gpt-4.1\nevaluation:\n  average_llm_judgement: 2.5\n")
	writeRaw(t, dir, "a_20250101_000000.yaml", "model: gpt-4.1\nevaluation:\n  average_llm_judgement: 2.5\n")
	writeRaw(t, dir, "c_20241231_235959.yaml", "model: gpt-4.1\nevaluation:\n  average_llm_judgement: 1.0\n")

	records, err := result.LoadAll(dir)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "c_20241231_235959.yaml", records[0].Filename)
	assert.Equal(t, "a_20250101_000000.yaml", records[1].Filename)
	assert.Equal(t, "b_20250101_000000.yaml", records[2].Filename)

	for _, mode := range []selection.Mode{selection.ModeBest, selection.ModeLatest} {
		picked := selection.Select(records, mode)
		require.Len(t, picked, 1, mode)
		assert.Equal(t, "b_20250101_000000.yaml", picked[0].Filename, mode)
	}
}

func TestLoadAllAbortsOnMalformedFile(t *testing.T) {
	dir := t.TempDir()
	_, err := result.WriteRunRecord(dir, &result.RunRecord{Model: "ok", Timestamp: time.Now()})
	require.NoError(t, err)
	writeRaw(t, dir, "artwork_imports_eval_20250101_000000.yaml", "- not\n- a mapping\n")

	records, err := result.LoadAll(dir)
	assert.ErrorIs(t, err, result.ErrMalformedRecord)
	assert.Nil(t, records)
}

func TestLoadAllMissingDir(t *testing.T) {
	_, err := result.LoadAll(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestLoadAllReadsArchivedRecords(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	rec := &result.RunRecord{
		Model:      "gemini-2.5-flash",
		Filename:   result.RecordFilename(ts) + ".zst",
		Evaluation: result.Evaluation{AverageLLMJudgement: 2.1, RowCount: 4},
	}
	_, err := result.WriteRunRecord(dir, rec)
	require.NoError(t, err)

	records, err := result.LoadAll(dir)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "gemini-2.5-flash", records[0].Model)
	assert.Equal(t, ts, records[0].Timestamp)
	assert.Equal(t, 4, records[0].Evaluation.RowCount)
	assert.InDelta(t, 2.1, records[0].Evaluation.AverageLLMJudgement, 1e-9)
}

func TestIsRecordFile(t *testing.T) {
	assert.True(t, result.IsRecordFile("a.yaml"))
	assert.True(t, result.IsRecordFile("a.yml"))
	assert.True(t, result.IsRecordFile("a.yaml.zst"))
	assert.False(t, result.IsRecordFile("a.json"))
	assert.False(t, result.IsRecordFile("a.zst"))
}

func TestEvaluationValue(t *testing.T) {
	ev := result.Evaluation{
		AverageLLMJudgement:   2.5,
		ValidRecordPercentage: 90,
		ParsedPercentage:      80,
		RecordsPerSecond:      1.5,
		DurationSeconds:       10,
		ValidationErrorCount:  4,
	}
	assert.Equal(t, 2.5, ev.Value(result.MetricQuality))
	assert.Equal(t, 90.0, ev.Value(result.MetricAccuracy))
	assert.Equal(t, 80.0, ev.Value(result.MetricCompleteness))
	assert.Equal(t, 1.5, ev.Value(result.MetricSpeed))
	assert.Zero(t, ev.Value(result.Metric("bogus")))
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4, "4.0"},
		{0, "0.0"},
		{12.5, "12.5"},
		{12.34, "12.34"},
		{1234567, "1234567.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, result.FormatSeconds(tt.in))
	}
}
