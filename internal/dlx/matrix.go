// Package dlx implements Knuth's Algorithm X over a toroidal Dancing Links
// matrix, specialized for the 324-column, 729-row exact cover formulation of
// 9x9 Sudoku.
//
// The matrix is a flat arena rather than a pointer graph: nodes are
// addressed by index (nodeRef) into a single fixed-size array, with a
// column-major slab layout. A column occupies ten consecutive slots — one
// header plus up to nine candidate cells — so the header of any node's
// column is always reachable by a single index computation, and "is this
// node a header" is a slot-zero check rather than a pointer comparison.
package dlx

// Layout constants for the 9x9 exact-cover formulation.
const (
	NumCols     = 324 // 81 cell + 81 row + 81 column + 81 box constraints
	slotsPerCol = 10  // header + up to 9 candidate rows per column
	numBuckets  = 11  // count buckets 0..10 (10 unused but kept for uniformity)

	matrixNodes = NumCols * slotsPerCol
	totalNodes  = matrixNodes + numBuckets

	// pinnedCount marks a header that was pre-covered for a given/single
	// cell during the build phase: its count is parked above the 0..9
	// range so AssignColumnHeaders skips it entirely.
	pinnedCount = 100
)

// nodeRef is an index into Matrix.nodes. The zero value is a valid
// reference (the header of column 0), so the nil sentinel is -1.
type nodeRef int32

const nilRef nodeRef = -1

// node is one slot in the arena: either a column header (slot 0 of a
// column, or one of the 11 count-bucket sentinels) or a candidate-row cell.
type node struct {
	row, col int32
	count    int32 // meaningful only on column headers

	up, down, left, right nodeRef
}

// colHeader returns the arena index of the header for constraint column c.
func colHeader(c int) nodeRef {
	return nodeRef(c * slotsPerCol)
}

// bucket returns the arena index of the count-bucket sentinel for count k.
func bucket(k int) nodeRef {
	return nodeRef(matrixNodes + k)
}

// isHeader reports whether n sits at slot 0 of its column's slab — the
// arena equivalent of "n is a column header", used to detect an exhausted
// column during backtracking.
func isHeader(n nodeRef) bool {
	return int(n) < matrixNodes && int(n)%slotsPerCol == 0
}

// Matrix is a reusable Dancing Links exact-cover matrix for one 9x9 Sudoku
// puzzle. A Matrix is not safe for concurrent use; the pipeline gives every
// worker its own instance for the worker's lifetime.
type Matrix struct {
	nodes [totalNodes]node

	solutionStack [81]nodeRef
	solutionPtr   int
	baseDepth     int
}

// New allocates a Matrix ready for its first Reset + build.
func New() *Matrix {
	m := &Matrix{}
	m.Reset()
	return m
}

// Reset clears all column headers and count buckets for a new puzzle.
// Cell-node contents are left untouched — they are overwritten by the next
// round of Insert calls.
func (m *Matrix) Reset() {
	for c := 0; c < NumCols; c++ {
		m.nodes[colHeader(c)].count = 0
	}
	for k := 0; k < numBuckets; k++ {
		b := bucket(k)
		m.nodes[b].left = b
		m.nodes[b].right = b
	}
	m.solutionPtr = 0
	m.baseDepth = 0
}

// Insert appends a new cell node to column col for candidate row, linking
// it as the new bottom of that column's partial vertical chain. It returns
// the new node's index so the caller can stitch the four nodes of a
// candidate row into a horizontal ring.
func (m *Matrix) Insert(row, col int) nodeRef {
	h := colHeader(col)
	count := m.nodes[h].count
	slot := nodeRef(int32(h) + count + 1)

	n := &m.nodes[slot]
	n.row = int32(row)
	n.col = int32(col)

	prevBottom := nodeRef(int32(h) + count)
	n.up = prevBottom
	m.nodes[prevBottom].down = slot

	m.nodes[h].count = count + 1
	return slot
}

// LinkRow stitches the four nodes belonging to one candidate row into a
// circular horizontal ring, in the order given.
func LinkRow(m *Matrix, nodes [4]nodeRef) {
	for i := range 4 {
		next := nodes[(i+1)%4]
		prev := nodes[(i+3)%4]
		m.nodes[nodes[i]].right = next
		m.nodes[nodes[i]].left = prev
	}
}

// FinalizeCols closes every column's vertical chain into a ring: the last
// inserted node's down points back to the header, and the header's up
// points back to that last node. A column with no insertions self-loops.
func (m *Matrix) FinalizeCols() {
	for c := 0; c < NumCols; c++ {
		h := colHeader(c)
		last := nodeRef(int32(h) + m.nodes[h].count)
		m.nodes[last].down = h
		m.nodes[h].up = last
	}
}

// AssignColumnHeaders inserts every header whose count is 0..9 into the
// matching count bucket. Headers pinned at pinnedCount by InitialCover are
// skipped, since initial_cover's pre-covered columns must never re-enter
// selection.
func (m *Matrix) AssignColumnHeaders() {
	for c := 0; c < NumCols; c++ {
		h := colHeader(c)
		count := m.nodes[h].count
		if count > 9 {
			continue
		}
		m.insertAfterH(h, bucket(int(count)), false)
	}
}

// insertAfterH inserts node n into the horizontal ring immediately after
// ante. When cut is true, n is first unlinked from whatever ring currently
// holds it (the re-bucketing case in Cover/Uncover); when cut is false, n
// is assumed to not yet be part of any ring (initial bucket assignment).
func (m *Matrix) insertAfterH(n, ante nodeRef, cut bool) {
	if cut {
		m.disconnectH(n)
	}
	anteRight := m.nodes[ante].right
	m.nodes[n].right = anteRight
	m.nodes[n].left = ante
	m.nodes[anteRight].left = n
	m.nodes[ante].right = n
}

func (m *Matrix) disconnectH(n nodeRef) {
	m.nodes[m.nodes[n].right].left = m.nodes[n].left
	m.nodes[m.nodes[n].left].right = m.nodes[n].right
}

func (m *Matrix) disconnectV(n nodeRef) {
	m.nodes[m.nodes[n].down].up = m.nodes[n].up
	m.nodes[m.nodes[n].up].down = m.nodes[n].down
}

// reconnectV restores n's vertical neighbors' links to point back at n. It
// is the exact inverse of disconnectV, valid because disconnectV never
// overwrites n's own up/down fields — only the neighbors' links to n are
// bypassed.
func (m *Matrix) reconnectV(n nodeRef) {
	m.nodes[m.nodes[n].down].up = n
	m.nodes[m.nodes[n].up].down = n
}

// rebucket moves header h into the bucket matching its current count, but
// only if h is presently a member of some bucket ring — a header that has
// already been covered (horizontally removed) must not be re-inserted by a
// sibling column's bookkeeping.
func (m *Matrix) rebucket(h nodeRef) {
	if m.nodes[m.nodes[h].right].left == h {
		m.insertAfterH(h, bucket(int(m.nodes[h].count)), true)
	}
}

// Cover removes the column containing n from the matrix: its header leaves
// its count bucket, and every row that has a node in the column is removed
// from all of its other columns, decrementing and re-bucketing those
// headers as it goes.
func (m *Matrix) Cover(n nodeRef) {
	h := colHeader(int(m.nodes[n].col))
	m.disconnectH(h)

	for v := m.nodes[h].down; v != h; v = m.nodes[v].down {
		for hz := m.nodes[v].right; hz != v; hz = m.nodes[hz].right {
			m.disconnectV(hz)
			cn := colHeader(int(m.nodes[hz].col))
			m.nodes[cn].count--
			m.rebucket(cn)
		}
	}
}

// Uncover reverses Cover: it must be called with the nodes in the reverse
// order they were covered. It restores every vertical link, every count and
// every header's bucket membership; it does not restore the order of headers
// within a count bucket, since a re-bucketed header is always inserted at the
// front of its bucket.
func (m *Matrix) Uncover(n nodeRef) {
	h := colHeader(int(m.nodes[n].col))
	m.insertAfterH(h, bucket(int(m.nodes[h].count)), false)

	for v := m.nodes[h].up; v != h; v = m.nodes[v].up {
		for hz := m.nodes[v].left; hz != v; hz = m.nodes[hz].left {
			m.reconnectV(hz)
			cn := colHeader(int(m.nodes[hz].col))
			m.nodes[cn].count++
			m.rebucket(cn)
		}
	}
}

// InitialCover pre-covers the column headed by h for a given/single cell
// during matrix construction: it pins the header's count at pinnedCount and
// vertically disconnects every intersecting row, but skips the header's own
// horizontal disconnect and all bucket maintenance, since
// AssignColumnHeaders (run afterward) simply never buckets a header whose
// count exceeds 9.
func (m *Matrix) InitialCover(h nodeRef) {
	m.nodes[h].count = pinnedCount
	for v := m.nodes[h].down; v != h; v = m.nodes[v].down {
		for hz := m.nodes[v].right; hz != v; hz = m.nodes[hz].right {
			m.disconnectV(hz)
			cn := colHeader(int(m.nodes[hz].col))
			m.nodes[cn].count--
		}
	}
}

// SelectMinColumn scans count buckets 0..9 in order and returns the first
// member of the first non-empty bucket, or nilRef if every column is
// covered.
func (m *Matrix) SelectMinColumn() nodeRef {
	for k := 0; k < 10; k++ {
		b := bucket(k)
		if m.nodes[b].right != b {
			return m.nodes[b].right
		}
	}
	return nilRef
}
