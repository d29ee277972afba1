package decomposition

import "github.com/katalvlaran/cmr/matrix"

// stageSeriesParallel is S5: applies series-parallel reductions — deleting
// zero or unit (single-nonzero) rows and columns, and identifying parallel
// columns / series rows (equal, or negatives of each other in the ternary
// case) — until a fixed point.
//
// If the matrix reduces to 0x0 -> Type = series_parallel, node finalised.
// Else the remaining kernel is attached as DenseMatrix, TestedSeriesParallel
// = true, and the node is re-pushed.
//
// When Params.seriesParallel is false, the stage is skipped entirely: the
// flag is set directly with no reduction attempted (spec.md §6's params
// table).
func stageSeriesParallel(t *Task, q *Queue) error {
	if err := t.checkTimeLimit(stageNameSeriesParallel); err != nil {
		return err
	}

	n := t.Node
	if !t.Params.seriesParallel {
		n.TestedSeriesParallel = true
		q.Push(t)

		return nil
	}

	cur := n.Matrix
	for {
		if err := t.checkTimeLimit(stageNameSeriesParallel); err != nil {
			return err
		}
		next, changed, err := reduceOneStep(cur)
		if err != nil {
			return newError(CodeInternalAssert, stageNameSeriesParallel, ErrInternalAssert)
		}
		if !changed {
			break
		}
		cur = next
		if cur.Rows() == 0 && cur.Cols() == 0 {
			break
		}
	}

	if cur.Rows() == 0 && cur.Cols() == 0 {
		n.Type = TypeSeriesParallel

		return nil
	}

	n.DenseMatrix = cur
	n.TestedSeriesParallel = true
	q.Push(t)

	return nil
}

// reduceOneStep performs a single elementary series-parallel reduction on
// m, returning the reduced matrix and whether any reduction fired.
func reduceOneStep(m *matrix.Dense) (*matrix.Dense, bool, error) {
	rows, cols := m.Rows(), m.Cols()

	rowCount := make([]int, rows)
	colCount := make([]int, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, false, err
			}
			if v != 0 {
				rowCount[i]++
				colCount[j]++
			}
		}
	}

	for i := 0; i < rows; i++ {
		if rowCount[i] <= 1 {
			return dropRow(m, i)
		}
	}
	for j := 0; j < cols; j++ {
		if colCount[j] <= 1 {
			return dropCol(m, j)
		}
	}

	for j1 := 0; j1 < cols; j1++ {
		for j2 := j1 + 1; j2 < cols; j2++ {
			if columnsParallel(m, j1, j2) {
				return dropCol(m, j2)
			}
		}
	}
	for i1 := 0; i1 < rows; i1++ {
		for i2 := i1 + 1; i2 < rows; i2++ {
			if rowsParallel(m, i1, i2) {
				return dropRow(m, i2)
			}
		}
	}

	return m, false, nil
}

func dropRow(m *matrix.Dense, drop int) (*matrix.Dense, bool, error) {
	rows := make([]int, 0, m.Rows()-1)
	for i := 0; i < m.Rows(); i++ {
		if i != drop {
			rows = append(rows, i)
		}
	}
	cols := make([]int, m.Cols())
	for j := range cols {
		cols[j] = j
	}
	sub, err := m.Submatrix(rows, cols)

	return sub, true, err
}

func dropCol(m *matrix.Dense, drop int) (*matrix.Dense, bool, error) {
	cols := make([]int, 0, m.Cols()-1)
	for j := 0; j < m.Cols(); j++ {
		if j != drop {
			cols = append(cols, j)
		}
	}
	rows := make([]int, m.Rows())
	for i := range rows {
		rows[i] = i
	}
	sub, err := m.Submatrix(rows, cols)

	return sub, true, err
}

func columnsParallel(m *matrix.Dense, j1, j2 int) bool {
	equal, negated := true, true
	for i := 0; i < m.Rows(); i++ {
		a, _ := m.At(i, j1)
		b, _ := m.At(i, j2)
		if a != b {
			equal = false
		}
		if a != -b {
			negated = false
		}
	}

	return equal || negated
}

func rowsParallel(m *matrix.Dense, i1, i2 int) bool {
	equal, negated := true, true
	for j := 0; j < m.Cols(); j++ {
		a, _ := m.At(i1, j)
		b, _ := m.At(i2, j)
		if a != b {
			equal = false
		}
		if a != -b {
			negated = false
		}
	}

	return equal || negated
}
