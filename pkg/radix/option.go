package radix

import "log/slog"

type Option func(*Tree) *Tree

// WithLogger makes the tree report splits, merges and removals at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) *Tree {
		if logger != nil {
			t.logger = logger
		}
		return t
	}
}

// WithCapacity preallocates room for n nodes in the arena.
func WithCapacity(n int) Option {
	return func(t *Tree) *Tree {
		if n > 0 {
			t.nodes = make([]node, 0, n)
		}
		return t
	}
}
