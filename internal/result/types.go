package result

import (
	"math"
	"strconv"
	"time"
)

// RunRecord is one evaluation of one model against the benchmark input.
type RunRecord struct {
	Model        string     `mapstructure:"model" yaml:"model"`
	SystemPrompt string     `mapstructure:"system_prompt" yaml:"system_prompt,omitempty"`
	UserPrompt   string     `mapstructure:"user_prompt" yaml:"user_prompt,omitempty"`
	Input        string     `mapstructure:"input" yaml:"input,omitempty"`
	Output       string     `mapstructure:"output" yaml:"output,omitempty"`
	IdealOutput  string     `mapstructure:"ideal_output" yaml:"ideal_output,omitempty"`
	Evaluation   Evaluation `mapstructure:"evaluation" yaml:"evaluation"`

	Filename  string    `mapstructure:"-" yaml:"-"`
	Timestamp time.Time `mapstructure:"-" yaml:"-"`
}

type Evaluation struct {
	ValidJSON             bool    `mapstructure:"valid_json" yaml:"valid_json"`
	Golden                bool    `mapstructure:"golden" yaml:"golden"`
	GoldenCaseInsensitive bool    `mapstructure:"golden_case_insensitive" yaml:"golden_case_insensitive"`
	RowCount              int     `mapstructure:"row_count" yaml:"row_count"`
	RecordCount           int     `mapstructure:"record_count" yaml:"record_count"`
	ParsedPercentage      float64 `mapstructure:"parsed_percentage" yaml:"parsed_percentage"`
	ValidRecordCount      int     `mapstructure:"valid_record_count" yaml:"valid_record_count"`
	ValidRecordPercentage float64 `mapstructure:"valid_record_percentage" yaml:"valid_record_percentage"`
	ValidationErrorCount  int     `mapstructure:"validation_error_count" yaml:"validation_error_count"`
	DurationSeconds       float64 `mapstructure:"duration_seconds" yaml:"duration_seconds"`
	RecordsPerSecond      float64 `mapstructure:"records_per_second" yaml:"records_per_second"`
	SecondsPerRecord      float64 `mapstructure:"seconds_per_record" yaml:"seconds_per_record"`
	AverageLLMJudgement   float64 `mapstructure:"average_llm_judgement" yaml:"average_llm_judgement"`
}

// MaxJudgement is the top of the judge's 1-3 grading scale.
const MaxJudgement = 3.0

// Metric names a numeric Evaluation field that can be charted.
type Metric string

const (
	MetricQuality      Metric = "quality"
	MetricAccuracy     Metric = "accuracy"
	MetricCompleteness Metric = "completeness"
	MetricSpeed        Metric = "speed"
)

// Label is the axis/legend caption for the metric.
func (m Metric) Label() string {
	switch m {
	case MetricQuality:
		return "Quality"
	case MetricAccuracy:
		return "Accuracy %"
	case MetricCompleteness:
		return "Completeness %"
	case MetricSpeed:
		return "Speed (rec/s)"
	default:
		return string(m)
	}
}

// Value returns the evaluation's value for m, or 0 for an unknown metric.
func (e Evaluation) Value(m Metric) float64 {
	switch m {
	case MetricQuality:
		return e.AverageLLMJudgement
	case MetricAccuracy:
		return e.ValidRecordPercentage
	case MetricCompleteness:
		return e.ParsedPercentage
	case MetricSpeed:
		return e.RecordsPerSecond
	default:
		return 0
	}
}

// FormatSeconds renders a duration as written by the harness, keeping at
// least one decimal place (4 prints as "4.0").
func FormatSeconds(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
