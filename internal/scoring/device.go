package scoring

import "github.com/rodriados/msa/internal/alphabet"

// DeviceTable is a device-resident clone of a Table. It owns its own
// copy of the flattened matrix (in the GPU build, this lives in device
// memory; see internal/pairwise's build-tag-gated backends) so a host
// Table can be freed or mutated without affecting clones already handed
// to worker blocks.
//
// This is the "owns" half of the owns/borrows pair: whoever calls Clone
// owns the returned DeviceTable and is responsible for its lifetime.
type DeviceTable struct {
	matrix  []int16
	gapCost int
}

// Clone copies t onto a fresh, independently-owned backing array.
func Clone(t *Table) *DeviceTable {
	matrix := make([]int16, len(t.matrix))
	copy(matrix, t.matrix[:])
	return &DeviceTable{matrix: matrix, gapCost: t.gapCost}
}

// At is the same cartesian accessor as Table.At, addressed identically
// so host and device copies are interchangeable to callers. A GPU
// kernel indexes by row = i/Size and col = i%Size from its flattened
// thread index; a host caller may just pass row/col directly.
func (d *DeviceTable) At(row, col int) int {
	return int(d.matrix[row*alphabet.Size+col])
}

// GapPenalty mirrors Table.GapPenalty for a device clone.
func (d *DeviceTable) GapPenalty() int { return d.gapCost }

// View returns a non-owning borrow of d: a device-pointer-shaped handle
// plus the gap penalty, the "borrows" half of the owns/borrows pair.
// Borrows are what get handed down into worker goroutines/kernels; only
// the code that called Clone may let the backing array go.
func (d *DeviceTable) View() TableView {
	return TableView{matrix: d.matrix, gapCost: d.gapCost}
}

// TableView is a non-owning borrow of a device-resident scoring table.
// It is POD (no heap indirection beyond the slice header) so it is
// cheap to copy into each worker's scope.
type TableView struct {
	matrix  []int16
	gapCost int
}

// Score returns the substitution score for aligning two alphabet Codes.
func (v TableView) Score(row, col alphabet.Code) int {
	return int(v.matrix[int(row)*alphabet.Size+int(col)])
}

// GapPenalty returns the linear gap penalty carried by the borrow.
func (v TableView) GapPenalty() int { return v.gapCost }
