// Package codegen provides code generation helpers and constants.
package codegen

import (
	"fmt"
	"go/token"
)

// Variable names used in generated code
const (
	InputName        = "input"
	InputLenName     = "l"
	OffsetName       = "offset"
	ByteName         = "c"
	CurrentName      = "current"
	NextName         = "next"
	StartClosureName = "startClosure"
)

// WordBits is the width of one bitset word in generated state sets.
const WordBits = 64

// StateName returns the comment label for an automaton state.
func StateName(idx int) string {
	return fmt.Sprintf("State%d", idx)
}

// WordCount returns how many bitset words hold n states.
func WordCount(n int) int {
	return (n + WordBits - 1) / WordBits
}

// Bit returns the word index and mask of state idx.
func Bit(idx int) (int, uint64) {
	return idx / WordBits, uint64(1) << (idx % WordBits)
}

// IsExportedIdent reports whether s can name an exported Go type.
func IsExportedIdent(s string) bool {
	return token.IsIdentifier(s) && token.IsExported(s)
}
