package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

const (
	OpInsert   = "insert"
	OpRemove   = "remove"
	OpContains = "contains"
)

// Result is the outcome of one tree operation. Found is whether the word is
// stored after an insert, was stored before a remove, or is stored for a contains.
type Result struct {
	Op    string `json:"op"`
	Word  string `json:"word"`
	Found bool   `json:"found"`
}

type Writer interface {
	Write(out io.Writer, results []Result) error
}

// NewWriter returns the writer for one of csv, tsv or json.
func NewWriter(format string, stats *Stats) (Writer, error) {
	switch format {
	case "csv":
		return &CsvWriter{Stats: stats}, nil
	case "tsv":
		return &CsvWriter{isTSV: true, Stats: stats}, nil
	case "json":
		return &JsonWriter{Stats: stats}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

type JsonWriter struct {
	Stats *Stats
}

func (w *JsonWriter) Write(out io.Writer, results []Result) error {
	encoder := json.NewEncoder(out)

	if _, err := out.Write([]byte("[")); err != nil {
		return err
	}
	for i, result := range results {
		if i > 0 {
			if _, err := out.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err := encoder.Encode(result); err != nil {
			return err
		}
		w.Stats.Output++
	}
	_, err := out.Write([]byte("]\n"))
	return err
}

type CsvWriter struct {
	isTSV bool
	Stats *Stats
}

// Write writes a header line then one record per result.
func (w *CsvWriter) Write(out io.Writer, results []Result) error {
	writer := csv.NewWriter(out)
	if w.isTSV {
		writer.Comma = '\t'
	}

	if err := writer.Write([]string{"op", "word", "found"}); err != nil {
		return err
	}
	for _, result := range results {
		if err := writer.Write([]string{result.Op, result.Word, strconv.FormatBool(result.Found)}); err != nil {
			return err
		}
		w.Stats.Output++
	}

	writer.Flush()
	return writer.Error()
}
