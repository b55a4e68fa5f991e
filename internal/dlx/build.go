package dlx

// Static lookup tables mapping each of the 729 candidate rows (cell i,
// digit d, row = 9*i + d-1) to the four constraint columns it occupies.
// Computed once at package init rather than hand-written, but functionally
// identical to the one_c/row_c/col_c/box_c tables of the source this is
// translated from.
var (
	cellConstraint [729]int
	rowConstraint  [729]int
	colConstraint  [729]int
	boxConstraint  [729]int
)

func init() {
	for cell := 0; cell < 81; cell++ {
		r, c := cell/9, cell%9
		box := (r/3)*3 + c/3
		for d := 0; d < 9; d++ {
			row := cell*9 + d
			cellConstraint[row] = cell
			rowConstraint[row] = 81 + r*9 + d
			colConstraint[row] = 162 + c*9 + d
			boxConstraint[row] = 243 + box*9 + d
		}
	}
}

// allCandidates is the bitmask with all nine digit bits set.
const allCandidates uint16 = 0x1FF

// Build populates the matrix from an 81-byte puzzle, pruning empty-cell
// candidates against the digits already given in the same row and column.
// puzzle must be at least 81 bytes; only the first 81 are read. Each byte
// must be '0' or '.' (empty) or '1'..'9' (given); Build never validates the
// puzzle beyond that — conflicting givens simply produce a matrix Search
// will report unsolvable.
func (m *Matrix) Build(puzzle []byte) {
	rowMask, colMask := givenMasks(puzzle)
	m.BuildMasked(puzzle, &rowMask, &colMask)
}

// BuildMasked is Build with explicit row/column pruning masks. A nil mask
// disables pruning for that axis — every empty cell then gets all nine
// candidates (minus whatever the other axis's mask removes).
func (m *Matrix) BuildMasked(puzzle []byte, rowMask, colMask *[9]uint16) {
	m.Reset()

	var precover [324]nodeRef
	precoverCount := 0

	for cell := 0; cell < 81; cell++ {
		r, c := cell/9, cell%9
		b := puzzle[cell]

		var cands uint16
		single := 0
		switch {
		case b >= '1' && b <= '9':
			single = int(b - '0')
		default:
			cands = allCandidates
			if rowMask != nil {
				cands &^= rowMask[r]
			}
			if colMask != nil {
				cands &^= colMask[c]
			}
		}

		if single == 0 {
			for d := 0; d < 9; d++ {
				bit := uint16(1) << uint(d)
				if cands&bit == 0 {
					continue
				}
				if cands == bit {
					single = d + 1
					break
				}

				row := cell*9 + d
				nodes := [4]nodeRef{
					m.Insert(row, cellConstraint[row]),
					m.Insert(row, rowConstraint[row]),
					m.Insert(row, colConstraint[row]),
					m.Insert(row, boxConstraint[row]),
				}
				LinkRow(m, nodes)
			}
		}

		if single != 0 {
			row := cell*9 + (single - 1)
			precover[precoverCount] = colHeader(cellConstraint[row])
			precover[precoverCount+1] = colHeader(rowConstraint[row])
			precover[precoverCount+2] = colHeader(colConstraint[row])
			precover[precoverCount+3] = colHeader(boxConstraint[row])
			precoverCount += 4

			m.solutionStack[m.solutionPtr] = m.reserveGivenNode(cellConstraint[row], row)
			m.solutionPtr++
		}
	}

	m.FinalizeCols()
	// Pre-covering duplicate headers (two given cells conflicting on the
	// same constraint) is harmless: the second call walks the same
	// now-already-disconnected siblings and re-applies the same
	// disconnects, which is idempotent on their up/down fields.
	for i := 0; i < precoverCount; i++ {
		m.InitialCover(precover[i])
	}
	m.AssignColumnHeaders()

	m.baseDepth = m.solutionPtr
}

// reserveGivenNode hands back a scratch node carrying row for a given or
// reduced-to-single cell, without linking it into the matrix. The column's
// own candidate slots are never touched by such a cell (no row is ever
// inserted for it), so slot count+1 — the next slot Insert would use — is
// always free to borrow purely to carry the decoded row id on the solution
// stack.
func (m *Matrix) reserveGivenNode(col, row int) nodeRef {
	h := colHeader(col)
	slot := nodeRef(int32(h) + m.nodes[h].count + 1)
	m.nodes[slot].row = int32(row)
	m.nodes[slot].col = int32(col)
	return slot
}

// givenMasks computes, for each row and column, the bitmask of digits
// already placed by a given cell in that row/column.
func givenMasks(puzzle []byte) (rowMask, colMask [9]uint16) {
	for cell := 0; cell < 81; cell++ {
		b := puzzle[cell]
		if b < '1' || b > '9' {
			continue
		}
		bit := uint16(1) << uint(b-'1')
		rowMask[cell/9] |= bit
		colMask[cell%9] |= bit
	}
	return rowMask, colMask
}
