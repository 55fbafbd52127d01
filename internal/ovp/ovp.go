// Package ovp computes the optimal viewing position anchor for a word.
package ovp

import "github.com/rivo/uniseg"

// AnchorIndex returns the zero-based index of the character cluster held
// at the fixed screen position. Lengths are counted in grapheme clusters
// so multi-byte glyphs do not skew the anchor.
//
//	0-1 clusters -> 0
//	2-5          -> 1
//	6-9          -> 2
//	10+          -> 3 (capped)
//
// Consumers must validate the index against the actual word length; an
// anchor at or past the end is a caller error, never silently clamped.
func AnchorIndex(word string) int {
	switch n := uniseg.GraphemeClusterCount(word); {
	case n <= 1:
		return 0
	case n <= 5:
		return 1
	case n <= 9:
		return 2
	default:
		return 3
	}
}
