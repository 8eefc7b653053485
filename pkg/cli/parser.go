package cli

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown format")

// maximum length of one line in a plain text source
const maxLineSize = 1024 * 1024

type Record map[string]string

// parseWords picks a parser from the file extension and calls onEachWord for every word.
func parseWords(path string, key string, onEachWord func(word string) error) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCsv(path, key, ',', onEachWord)
	case ".tsv":
		return parseCsv(path, key, '\t', onEachWord)
	case ".json":
		return parseJson(path, key, onEachWord)
	default:
		return parseText(path, onEachWord)
	}
}

// parseText reads one word per line, skipping blank lines.
func parseText(path string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		word := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(word) == "" {
			continue
		}
		if err := onEachWord(word); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// parseCsv reads the column named key; the first line is the header.
func parseCsv(path string, key string, separator rune, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = separator

	headers, err := reader.Read()
	if err != nil {
		return err
	}
	column := -1
	for i, header := range headers {
		if header == key {
			column = i
			break
		}
	}
	if column < 0 {
		return fmt.Errorf("column %q not found in header %v", key, headers)
	}

	for {
		recordData, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		record := make(Record, len(headers))
		for i, value := range recordData {
			record[headers[i]] = value
		}
		if err := onEachWord(record[key]); err != nil {
			return err
		}
	}
}

// parseJson reads an array whose elements are either strings or objects holding
// the word under key.
func parseJson(path string, key string, onEachWord func(word string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("%w: expected a JSON array, got %v", ErrUnknownFormat, token)
	}

	for decoder.More() {
		var element any
		if err := decoder.Decode(&element); err != nil {
			return err
		}

		var word string
		switch value := element.(type) {
		case string:
			word = value
		case map[string]any:
			field, ok := value[key].(string)
			if !ok {
				return fmt.Errorf("record %v has no string field %q", value, key)
			}
			word = field
		default:
			return fmt.Errorf("%w: unexpected JSON element %v", ErrUnknownFormat, element)
		}

		if err := onEachWord(word); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err = decoder.Token()
	return err
}
