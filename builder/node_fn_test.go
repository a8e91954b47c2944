package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphina/builder"
)

func TestDefaultStringNodeFn(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultStringNodeFn(0))
	assert.Equal(t, "42", builder.DefaultStringNodeFn(42))
}

func TestSymbolNodeFn(t *testing.T) {
	assert.Equal(t, "A", builder.SymbolNodeFn(0))
	assert.Equal(t, "Z", builder.SymbolNodeFn(25))
	assert.Panics(t, func() { builder.SymbolNodeFn(26) })
}

func TestExcelColumnNodeFn(t *testing.T) {
	assert.Equal(t, "A", builder.ExcelColumnNodeFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnNodeFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnNodeFn(26))
}

func TestHexNodeFn(t *testing.T) {
	assert.Equal(t, "ff", builder.HexNodeFn(255))
}

func TestSymbolNumberNodeFn(t *testing.T) {
	fn := builder.SymbolNumberNodeFn("v")
	assert.Equal(t, "v0", fn(0))
	assert.Equal(t, "v7", fn(7))
}
