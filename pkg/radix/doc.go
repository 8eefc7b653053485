// ## Overview
// Package radix implements a compressed prefix tree (radix tree) over strings.
// Every edge carries a label of one or more characters, and chains of single-child
// nodes are folded into one edge. A string is stored when the path from the root
// spells it and ends on a leaf, or on a node holding a zero-length terminator edge.
//
// Characters are the bytes of a Go string; no Unicode segmentation is applied.
// Nodes live in an arena and refer to their parent by index, so the upward links
// used while merging never own anything.
//
// ## Example usage:
//
//	tree := radix.New()
//	tree.Insert("Rick")
//	tree.Insert("Rickos")
//	tree.Insert("Rodri")
//
//	fmt.Println(tree.Contains("Rick")) // Output: true
//	fmt.Println(tree.Contains("Ri"))   // Output: false
//
//	tree.Remove("Rick")
//	fmt.Println(tree.Contains("Rickos")) // Output: true
//
// A Tree is not safe for concurrent use without external locking.
package radix
