package cli

import (
	"fmt"
)

type CheckCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"Word sources: .csv/.tsv, .json, or plain text with one word per line"`
	Query  []string `short:"q" sep:"none" help:"Word to look up, repeatable"`
	Remove []string `short:"r" sep:"none" help:"Word to remove after loading, repeatable"`
	Key    string   `help:"Column or field holding the word in CSV and JSON sources" default:"word"`
	Format string   `help:"Output format" enum:"csv,tsv,json" default:"csv"`
}

// Run executes the check command.
func (cmd *CheckCmd) Run(ctx *Context) error {
	for _, file := range cmd.Files {
		if err := loadWords(ctx, cmd.Key, file); err != nil {
			return fmt.Errorf("loading %s: %w", file, err)
		}
	}

	for _, word := range cmd.Remove {
		if ctx.tree.Remove(word) {
			ctx.stats.Removed++
		} else {
			ctx.logger.Warn("word to remove is not stored", "word", word)
		}
	}

	results := make([]Result, 0, len(cmd.Query))
	for _, word := range cmd.Query {
		found := ctx.tree.Contains(word)
		results = append(results, Result{Op: OpContains, Word: word, Found: found})
		ctx.stats.Queried++
		if found {
			ctx.stats.Found++
		}
	}

	writer, err := NewWriter(cmd.Format, ctx.stats)
	if err != nil {
		return err
	}
	if err := writer.Write(ctx.out, results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	ctx.logger.Info("check complete",
		"input", ctx.stats.Input,
		"removed", ctx.stats.Removed,
		"stored", ctx.tree.Len(),
		"queried", ctx.stats.Queried,
		"found", ctx.stats.Found,
	)
	return nil
}

// loadWords parses a file and inserts its words into the tree.
func loadWords(ctx *Context, key string, file string) error {
	return parseWords(file, key, func(word string) error {
		ctx.tree.Insert(word)
		ctx.stats.Input++
		return nil
	})
}
