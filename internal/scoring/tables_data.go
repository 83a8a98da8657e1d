package scoring

import "github.com/rodriados/msa/internal/alphabet"

// standardOrder is the conventional amino-acid ordering substitution
// matrices are published in. buildTable below remaps published values
// into our alphabet's own Code ordering.
const standardOrder = "ARNDCQEGHILKMFPSTWYV"

// blosum62Standard is the published BLOSUM62 matrix in standardOrder,
// flattened row-major.
var blosum62Standard = [400]int16{
	4, -1, -2, -2, 0, -1, -1, 0, -2, -1, -1, -1, -1, -2, -1, 1, 0, -3, -2, 0,
	-1, 5, 0, -2, -3, 1, 0, -2, 0, -3, -2, 2, -1, -3, -2, -1, -1, -3, -2, -3,
	-2, 0, 6, 1, -3, 0, 0, 0, 1, -3, -3, 0, -2, -3, -2, 1, 0, -4, -2, -3,
	-2, -2, 1, 6, -3, 0, 2, -1, -1, -3, -4, -1, -3, -3, -1, 0, -1, -4, -3, -3,
	0, -3, -3, -3, 9, -3, -4, -3, -3, -1, -1, -3, -1, -2, -3, -1, -1, -2, -2, -1,
	-1, 1, 0, 0, -3, 5, 2, -2, 0, -3, -2, 1, 0, -3, -1, 0, -1, -2, -1, -2,
	-1, 0, 0, 2, -4, 2, 5, -2, 0, -3, -3, 1, -2, -3, -1, 0, -1, -3, -2, -2,
	0, -2, 0, -1, -3, -2, -2, 6, -2, -4, -4, -2, -3, -3, -2, 0, -2, -2, -3, -3,
	-2, 0, 1, -1, -3, 0, 0, -2, 8, -3, -3, -1, -2, -1, -2, -1, -2, -2, 2, -3,
	-1, -3, -3, -3, -1, -3, -3, -4, -3, 4, 2, -3, 1, 0, -3, -2, -1, -3, -1, 3,
	-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4, -2, 2, 0, -3, -2, -1, -2, -1, 1,
	-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5, -1, -3, -1, 0, -1, -3, -2, -2,
	-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5, 0, -2, -1, -1, -1, -1, 1,
	-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6, -4, -2, -2, 1, 3, -1,
	-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7, -1, -1, -4, -3, -2,
	1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4, 1, -3, -2, -2,
	0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5, -2, -2, 0,
	-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11, 2, -3,
	-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7, -1,
	0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -1, 4,
}

// scaleVariant derives a catalog entry structurally related to
// blosum62Standard by a per-table scale factor. Rather than invent
// unsourced "published" digits for every catalog name, named variants
// here are declared as scaled relatives of the one matrix this module
// carries in full (blosum62), so every catalog name resolves to a
// valid, internally consistent, symmetric table.
func scaleVariant(scale float64) [400]int16 {
	var out [400]int16
	for i, v := range blosum62Standard {
		out[i] = int16(float64(v) * scale)
	}
	return out
}

// buildTable projects a standardOrder-keyed 20×20 matrix into our
// alphabet's 25×25 Code space. Ambiguity codes are filled from their
// constituent residues' average score (B from D/N, Z from E/Q, J from
// I/L), X scores -1 against everything but itself, and '*' is left at
// zero throughout since the pairwise engine never consults it.
func buildTable(name string, standard [400]int16, gapPenalty int) *Table {
	t := &Table{name: name, gapCost: gapPenalty}

	pos := func(b byte) int {
		for i := 0; i < len(standardOrder); i++ {
			if standardOrder[i] == b {
				return i
			}
		}
		return -1
	}
	scoreOf := func(a, b byte) int {
		pa, pb := pos(a), pos(b)
		return int(standard[pa*20+pb])
	}

	for r := 0; r < alphabet.Size; r++ {
		for c := 0; c < alphabet.Size; c++ {
			rs, cs := alphabet.Code(r).Symbol(), alphabet.Code(c).Symbol()
			t.matrix[r*alphabet.Size+c] = int16(resolveScore(rs, cs, scoreOf))
		}
	}
	return t
}

// resolveScore computes the substitution score between two alphabet
// symbols, handling the standard 20 residues directly and the
// ambiguity/padding symbols via averaging or a fixed penalty.
func resolveScore(a, b byte, scoreOf func(a, b byte) int) int {
	expand := func(s byte) []byte {
		switch s {
		case 'B':
			return []byte{'D', 'N'}
		case 'Z':
			return []byte{'E', 'Q'}
		case 'J':
			return []byte{'I', 'L'}
		default:
			return []byte{s}
		}
	}

	if a == '*' || b == '*' {
		return 0
	}
	if a == 'X' || b == 'X' {
		if a == b {
			return 1
		}
		return -1
	}

	as, bs := expand(a), expand(b)
	sum := 0
	for _, av := range as {
		for _, bv := range bs {
			sum += scoreOf(av, bv)
		}
	}
	return sum / (len(as) * len(bs))
}
