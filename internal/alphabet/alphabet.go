// Package alphabet implements the 25-symbol protein alphabet and the
// 5-bit packed sequence encoding the pairwise engine scores over.
//
// Unknown input characters fold to X. '*' is the end-of-sequence padding
// symbol used to round a sequence up to a whole packed word and to
// short-circuit pairwise scoring.
package alphabet

import "fmt"

// symbols is the fixed, ordered 25-symbol alphabet. Its position in this
// slice is a residue's code, so Code is always in [0, Size).
const symbols = "ACTGRNDQEHILKMFPSWYVBJZX*"

// Size is the number of symbols in the alphabet, and the dimension of a
// ScoringTable.
const Size = len(symbols)

// Pad is the code of the '*' end-of-sequence padding symbol.
const Pad = Size - 1

// Unknown is the code of the 'X' fold-unknown-input symbol.
var Unknown = codeOf('X')

// Code is a single 5-bit residue code, always in [0, Size).
type Code uint8

var byteToCode [256]Code

func init() {
	for i := range byteToCode {
		byteToCode[i] = Unknown
	}
	for i := 0; i < Size; i++ {
		byteToCode[symbols[i]] = Code(i)
	}
}

func codeOf(b byte) Code {
	for i := 0; i < Size; i++ {
		if symbols[i] == b {
			return Code(i)
		}
	}
	panic(fmt.Sprintf("alphabet: symbol %q not in alphabet", b))
}

// Encode maps an input byte to its alphabet Code, folding any symbol
// outside the 25-letter alphabet to Unknown ('X').
func Encode(b byte) Code {
	return byteToCode[b]
}

// Symbol returns the printable character for a Code. Codes outside
// [0, Size) are not produced by Encode and indicate a programming error.
func (c Code) Symbol() byte {
	if int(c) >= Size {
		panic("alphabet: code out of range")
	}
	return symbols[c]
}

func (c Code) String() string {
	return string(c.Symbol())
}

// IsPad reports whether c is the '*' end-of-sequence padding symbol.
func (c Code) IsPad() bool {
	return c == Pad
}
