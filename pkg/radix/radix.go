package radix

import (
	"io"
	"log/slog"
	"strings"
)

// Tree is a compressed prefix tree of strings. The zero value is not usable, create one with New.
// A Tree is not safe for concurrent use.
type Tree struct {
	nodes  []node   // arena, nodes[rootID] is the root
	free   []nodeID // released slots ready for reuse
	size   int      // number of stored strings
	logger *slog.Logger
}

// New creates an empty tree holding only its root.
func New(opts ...Option) *Tree {
	t := &Tree{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		t = opt(t)
	}
	t.nodes = append(t.nodes, node{parent: noNode})
	return t
}

// Len returns the number of strings stored in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Contains reports whether word was inserted and not removed since.
// A word that is only a strict prefix of stored strings is not contained.
func (t *Tree) Contains(word string) bool {
	id, ok := t.find(word)
	return ok && t.terminates(id)
}

// Insert stores word in the tree. Inserting a stored word is a no-op.
func (t *Tree) Insert(word string) {
	current, suffix := rootID, word
	for {
		if suffix == "" {
			// a non-root leaf already marks the end of a string
			if current != rootID && t.isLeaf(current) {
				return
			}
			if !t.hasTerminator(current) {
				t.addEdge(current, "")
				t.size++
				t.logger.Debug("terminator added", "word", word)
			}
			return
		}

		e := t.edgeAt(current, keyOf(suffix))
		if e == nil {
			t.addEdge(current, suffix)
			t.size++
			return
		}

		pos := commonPrefixLen(e.label, suffix)
		if pos == len(e.label) {
			rest := suffix[pos:]
			if !t.isLeaf(e.to) {
				current, suffix = e.to, rest
				continue
			}
			if rest == "" {
				return
			}
			// the leaf turns into a branching point that still ends a string
			t.addEdge(e.to, "")
			t.addEdge(e.to, rest)
			t.size++
			return
		}

		// the word diverges inside the label
		if t.isLeaf(e.to) {
			oldRest := e.label[pos:]
			e.label = e.label[:pos]
			t.addEdge(e.to, oldRest)
			t.addEdge(e.to, suffix[pos:])
			t.size++
			t.logger.Debug("split edge", "prefix", e.label, "old", oldRest, "new", suffix[pos:])
			return
		}
		current, suffix = t.splitEdge(e, pos), suffix[pos:]
	}
}

// Remove deletes word from the tree and reports whether it was stored.
// Removing a word that is not stored is a no-op.
func (t *Tree) Remove(word string) bool {
	id, ok := t.find(word)
	if !ok {
		return false
	}

	switch {
	case id == rootID:
		if !t.hasTerminator(rootID) {
			return false
		}
		t.removeEdge(rootID, terminator)
	case t.isLeaf(id):
		parent := t.nodes[id].parent
		t.removeEdge(parent, t.nodes[id].in)
		t.merge(parent)
	case t.hasTerminator(id):
		t.removeEdge(id, terminator)
		t.merge(id)
	default:
		// a branching point that no stored string ends at
		return false
	}

	t.size--
	t.logger.Debug("word removed", "word", word)
	return true
}

// find walks down from the root consuming word one whole edge label at a time.
// It returns the node where word is fully consumed, or false when word runs out
// in the middle of a label or leaves the tree.
func (t *Tree) find(word string) (nodeID, bool) {
	current, suffix := rootID, word
	for suffix != "" {
		e := t.edgeAt(current, keyOf(suffix))
		if e == nil || !strings.HasPrefix(suffix, e.label) {
			return noNode, false
		}
		current, suffix = e.to, suffix[len(e.label):]
	}
	return current, true
}

// splitEdge shortens the label of e to its first pos characters and inserts a new
// node between e and its old destination. It returns the new node.
func (t *Tree) splitEdge(e *edge, pos int) nodeID {
	if pos <= 0 || pos >= len(e.label) {
		panic("[BUG] splitEdge: split position must fall strictly inside the label")
	}
	rest := e.label[pos:]
	old := e.to

	mid := t.newNode(e.from, keyOf(e.label))
	e.label = e.label[:pos]
	e.to = mid
	t.attach(mid, rest, old)

	t.logger.Debug("split branching edge", "prefix", e.label, "rest", rest)
	return mid
}

// merge folds a non-root node left with a single outgoing edge into its incoming edge.
//
//	parent --"ab"--> id --"cd"--> child   =>   parent --"abcd"--> child
//
// When the single edge is the terminator, id simply becomes a leaf, which
// still marks the end of a string. The root is never merged.
func (t *Tree) merge(id nodeID) {
	if id == rootID {
		return
	}
	edges := t.nodes[id].edges
	if len(edges) == 0 {
		panic("[BUG] merge: a non-root node lost all of its edges")
	}
	if len(edges) != 1 {
		return
	}

	var child *edge
	for _, e := range edges {
		child = e
	}
	if child.label == "" {
		t.removeEdge(id, terminator)
		return
	}

	in := t.incoming(id)
	in.label += child.label
	in.to = child.to
	t.nodes[child.to].parent = in.from
	t.nodes[child.to].in = t.nodes[id].in

	t.freeSlot(id)

	t.logger.Debug("merged edges", "label", in.label)
}
