package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidStep       = errors.New("invalid step")
	ErrExpectationFailed = errors.New("expectation failed")
)

// Script is a list of tree operations, optionally preceded by words to load.
//
//	words: [Rick, Rodri]
//	steps:
//	  - insert: Rickos
//	  - remove: Rick
//	  - contains: Rick
//	    expect: false
type Script struct {
	Words []string `yaml:"words"`
	Steps []Step   `yaml:"steps"`
}

// Step holds exactly one operation. Pointers tell an absent field from the empty word.
type Step struct {
	Insert   *string `yaml:"insert"`
	Remove   *string `yaml:"remove"`
	Contains *string `yaml:"contains"`
	Expect   *bool   `yaml:"expect"`
}

// operation returns the name and word of the single operation the step holds.
func (s Step) operation() (string, string, error) {
	op, word, count := "", "", 0
	for name, value := range map[string]*string{
		OpInsert:   s.Insert,
		OpRemove:   s.Remove,
		OpContains: s.Contains,
	} {
		if value != nil {
			op, word = name, *value
			count++
		}
	}
	if count != 1 {
		return "", "", fmt.Errorf("%w: want exactly one of insert, remove or contains, got %d", ErrInvalidStep, count)
	}
	return op, word, nil
}

// LoadScript reads and validates a YAML script. Unknown keys are rejected.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	script := &Script{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(script); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding script: %w", err)
	}

	for i, step := range script.Steps {
		if _, _, err := step.operation(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return script, nil
}

type ScriptCmd struct {
	File   string `arg:"" type:"existingfile" help:"YAML script with optional words and a list of steps"`
	Format string `help:"Output format" enum:"csv,tsv,json" default:"tsv"`
}

// Run executes every step, then fails if any expectation did not hold.
func (cmd *ScriptCmd) Run(ctx *Context) error {
	script, err := LoadScript(cmd.File)
	if err != nil {
		return err
	}

	for _, word := range script.Words {
		ctx.tree.Insert(word)
		ctx.stats.Input++
	}

	failed := 0
	results := make([]Result, 0, len(script.Steps))
	for i, step := range script.Steps {
		result := runStep(ctx, step)
		results = append(results, result)

		if step.Expect != nil && *step.Expect != result.Found {
			failed++
			ctx.logger.Error("expectation failed",
				"step", i+1,
				"op", result.Op,
				"word", result.Word,
				"expected", *step.Expect,
				"got", result.Found,
			)
		}
	}

	writer, err := NewWriter(cmd.Format, ctx.stats)
	if err != nil {
		return err
	}
	if err := writer.Write(ctx.out, results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	ctx.logger.Info("script complete", "steps", len(script.Steps), "failed", failed, "stored", ctx.tree.Len())
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d steps", ErrExpectationFailed, failed, len(script.Steps))
	}
	return nil
}

// runStep applies a validated step to the tree.
func runStep(ctx *Context, step Step) Result {
	op, word, _ := step.operation()
	result := Result{Op: op, Word: word}

	switch op {
	case OpInsert:
		ctx.tree.Insert(word)
		result.Found = ctx.tree.Contains(word)
	case OpRemove:
		result.Found = ctx.tree.Remove(word)
		if result.Found {
			ctx.stats.Removed++
		}
	case OpContains:
		result.Found = ctx.tree.Contains(word)
		ctx.stats.Queried++
		if result.Found {
			ctx.stats.Found++
		}
	}
	return result
}
