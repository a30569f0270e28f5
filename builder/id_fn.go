// Package builder provides internal helper functions and types
// for configuring ID schemes in graph constructors.
package builder

import (
	"strconv"
)

// IDFn generates a vertex identifier from its zero‐based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) time where d = number of digits in idx, O(1) extra space.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the “Excel‐style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Negative indexes fall back to DefaultIDFn.
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx), O(1) extra space.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		return DefaultIDFn(idx)
	}
	// build letters in reverse order
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 { // 26 alphabet size
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Complexity: O(d) where d is the number of decimal digits in idx.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// GridID returns the sample-grid identifier of cell (row, col): a letter
// selecting the block of 26 rows, the row within the block, a dash and the
// column. GridID(0,0)="A0-0", GridID(14,3)="A14-3", GridID(27,1)="B1-1".
func GridID(row, col int) string {
	return string(rune('A'+row/26)) + strconv.Itoa(row%26) + "-" + strconv.Itoa(col)
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
