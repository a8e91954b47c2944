package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphina/core"
)

// DefaultStringNodeFn returns the decimal string of idx, e.g. 0->"0".
// Mirrors the teacher's DefaultIDFn as a payload labeler for A=string
// graphs, rather than as an addressing scheme.
func DefaultStringNodeFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolNodeFn returns the uppercase Latin letter for idx in [0,25].
// Panics if idx is out of range.
func SymbolNodeFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("builder: SymbolNodeFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// AlphanumericNodeFn returns a base-36 string for idx, e.g. 10->"a".
// Panics if idx < 0.
func AlphanumericNodeFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: AlphanumericNodeFn: idx must be >= 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnNodeFn returns the Excel-style column name for idx, e.g.
// 0->"A", 25->"Z", 26->"AA". Panics if idx < 0.
func ExcelColumnNodeFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: ExcelColumnNodeFn: idx must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// HexNodeFn returns the lowercase hexadecimal representation of idx.
// Panics if idx < 0.
func HexNodeFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: HexNodeFn: idx must be >= 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberNodeFn returns a NodeFn producing prefix+decimal(idx),
// e.g. SymbolNumberNodeFn("v") -> "v0", "v1", ...
func SymbolNumberNodeFn(prefix string) NodeFn[string] {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: SymbolNumberNodeFn: idx must be >= 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithDefaultStringLabels sets the node payload scheme to
// DefaultStringNodeFn on a string-payload graph.
func WithDefaultStringLabels[W core.Number]() Option[string, W] {
	return WithNodeFn[string, W](DefaultStringNodeFn)
}

// WithSymbolLabels sets the node payload scheme to SymbolNodeFn.
func WithSymbolLabels[W core.Number]() Option[string, W] {
	return WithNodeFn[string, W](SymbolNodeFn)
}

// WithExcelColumnLabels sets the node payload scheme to ExcelColumnNodeFn.
func WithExcelColumnLabels[W core.Number]() Option[string, W] {
	return WithNodeFn[string, W](ExcelColumnNodeFn)
}

// WithHexLabels sets the node payload scheme to HexNodeFn.
func WithHexLabels[W core.Number]() Option[string, W] {
	return WithNodeFn[string, W](HexNodeFn)
}

// WithAlphanumericLabels sets the node payload scheme to AlphanumericNodeFn.
func WithAlphanumericLabels[W core.Number]() Option[string, W] {
	return WithNodeFn[string, W](AlphanumericNodeFn)
}
