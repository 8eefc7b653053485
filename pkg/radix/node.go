package radix

import "fmt"

// key indexes the outgoing edges of a node. Real keys are the byte values 0..255,
// so the terminator sentinel can never collide with a character (NUL included).
type key int16

// terminator is the key of the zero-length edge marking that a string ends at a node.
const terminator key = -1

// nodeID addresses a node inside the tree arena.
type nodeID int32

const (
	rootID nodeID = 0
	noNode nodeID = -1
)

// keyOf returns the map key an edge with the given label is stored under.
func keyOf(label string) key {
	if label == "" {
		return terminator
	}
	return key(label[0])
}

// edge is a labeled link owned by its source node. It owns its destination node;
// from is a non-owning back reference used when merging.
type edge struct {
	label string
	from  nodeID
	to    nodeID
}

// two edges are equal when their labels are equal
func (e *edge) equal(other *edge) bool {
	return e.label == other.label
}

// node is one arena slot. parent and in locate the incoming edge
// (nodes[parent].edges[in]); the root has parent == noNode.
type node struct {
	edges  map[key]*edge
	parent nodeID
	in     key
}

// newNode takes a slot from the free list, or grows the arena.
func (t *Tree) newNode(parent nodeID, in key) nodeID {
	n := node{parent: parent, in: in}
	if last := len(t.free) - 1; last >= 0 {
		id := t.free[last]
		t.free = t.free[:last]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return nodeID(len(t.nodes) - 1)
}

// isLeaf checks if the node has no outgoing edge.
func (t *Tree) isLeaf(id nodeID) bool {
	return len(t.nodes[id].edges) == 0
}

func (t *Tree) hasTerminator(id nodeID) bool {
	_, ok := t.nodes[id].edges[terminator]
	return ok
}

// terminates reports whether a stored string ends exactly at the node.
// The root needs its terminator edge, every other node is also an end when it is a leaf.
func (t *Tree) terminates(id nodeID) bool {
	if id == rootID {
		return t.hasTerminator(id)
	}
	return t.isLeaf(id) || t.hasTerminator(id)
}

// edgeAt returns the outgoing edge of the node stored under k, or nil.
func (t *Tree) edgeAt(id nodeID, k key) *edge {
	return t.nodes[id].edges[k]
}

// incoming returns the single edge whose destination is the node.
func (t *Tree) incoming(id nodeID) *edge {
	n := t.nodes[id]
	if n.parent == noNode {
		panic("[BUG] incoming: the root has no incoming edge")
	}
	e := t.nodes[n.parent].edges[n.in]
	if e == nil || e.to != id {
		panic(fmt.Sprintf("[BUG] incoming: dangling back reference on node %d", id))
	}
	return e
}

// addEdge adds an edge with a fresh destination node, if no edge exists under the
// label's key yet. It returns the new edge or the existing one.
func (t *Tree) addEdge(from nodeID, label string) *edge {
	k := keyOf(label)
	if existing := t.edgeAt(from, k); existing != nil {
		return existing
	}
	to := t.newNode(from, k)
	return t.attach(from, label, to)
}

// attach links an existing node below from, replacing its back reference.
func (t *Tree) attach(from nodeID, label string, to nodeID) *edge {
	k := keyOf(label)
	e := &edge{label: label, from: from, to: to}
	if t.nodes[from].edges == nil {
		t.nodes[from].edges = make(map[key]*edge)
	}
	t.nodes[from].edges[k] = e
	t.nodes[to].parent = from
	t.nodes[to].in = k
	return e
}

// removeEdge detaches the edge stored under k and releases its whole subtree.
func (t *Tree) removeEdge(from nodeID, k key) {
	e := t.edgeAt(from, k)
	if e == nil {
		return
	}
	delete(t.nodes[from].edges, k)
	t.release(e.to)
}

// release returns the node and all of its descendants to the free list.
func (t *Tree) release(id nodeID) {
	stack := []nodeID{id}
	for len(stack) > 0 {
		last := len(stack) - 1
		current := stack[last]
		stack = stack[:last]
		for _, e := range t.nodes[current].edges {
			stack = append(stack, e.to)
		}
		t.freeSlot(current)
	}
}

// freeSlot clears one arena slot without touching the nodes below it.
func (t *Tree) freeSlot(id nodeID) {
	t.nodes[id] = node{parent: noNode}
	t.free = append(t.free, id)
}

// commonPrefixLen returns the length of the longest common prefix of a and b.
func commonPrefixLen(a, b string) int {
	i := 0
	limit := min(len(a), len(b))
	for i < limit && a[i] == b[i] {
		i++
	}
	return i
}
