package dlx

// Search runs the iterative Algorithm X backtracking search starting from
// whatever state Build left the matrix in. It never backtracks past the
// base depth recorded by Build (the pre-assigned given/single cells), and
// stops at the first exact cover found.
//
// On success, the 81 candidate rows chosen are left in the solution stack
// and can be read back with Solution.
func (m *Matrix) Search() bool {
	selCol := m.SelectMinColumn()
	if selCol == nilRef {
		// An empty matrix is already an exact cover (every column was
		// pre-covered by given cells) — rare, but a fully-given puzzle
		// hits this on the very first call.
		return true
	}
	if m.nodes[selCol].count < 1 {
		return false
	}

	v := m.nodes[selCol].down
	for {
		// Descend: choose v as part of the solution and cover every
		// column its row touches, including v's own column.
		m.solutionStack[m.solutionPtr] = v
		m.solutionPtr++

		hz := v
		for {
			m.Cover(hz)
			hz = m.nodes[hz].right
			if hz == v {
				break
			}
		}

		selCol = m.SelectMinColumn()
		if selCol == nilRef {
			return true
		}
		if m.nodes[selCol].count > 0 {
			v = m.nodes[selCol].down
			continue
		}

		// Backtrack: the chosen column is exhausted. Undo rows until we
		// find one with an untried candidate below it, popping past
		// exhausted columns as we go. Never undo below baseDepth.
		for {
			m.solutionPtr--
			if m.solutionPtr < m.baseDepth {
				return false
			}
			v = m.solutionStack[m.solutionPtr]

			left0 := m.nodes[v].left
			hz = left0
			for {
				m.Uncover(hz)
				hz = m.nodes[hz].left
				if hz == left0 {
					break
				}
			}

			v = m.nodes[v].down
			if !isHeader(v) {
				break
			}
		}
	}
}

// Solution returns the 81 (cellIndex, digit) assignments chosen by the most
// recent successful Search, decoded from the solution stack. The result is
// ordered by solution-stack depth, not by cell index.
func (m *Matrix) Solution() [81]Assignment {
	var out [81]Assignment
	for i := 0; i < m.solutionPtr && i < 81; i++ {
		row := int(m.nodes[m.solutionStack[i]].row)
		out[i] = assignmentFromRow(row)
	}
	return out
}

// Assignment is one decoded (cell, digit) pair from a candidate row id.
type Assignment struct {
	Cell  int // 0..80
	Digit int // 1..9
}

func assignmentFromRow(row int) Assignment {
	return Assignment{Cell: row / 9, Digit: row%9 + 1}
}
