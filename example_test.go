package decomposition_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cmr"
	"github.com/katalvlaran/cmr/matrix"
)

// ExampleTest demonstrates the driver's entry point on the identity matrix,
// which reduces to the empty matroid under series-parallel reduction.
func ExampleTest() {
	entries := []matrix.SparseEntry{{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1}}
	m, err := matrix.FromSparse(2, 2, entries, false, nil, nil)
	if err != nil {
		panic(err)
	}

	params := decomposition.NewParams(decomposition.WithCompleteTree(true))
	isRegular, root, _, err := decomposition.Test(m, params, decomposition.NewStats(), 2*time.Second)
	if err != nil {
		panic(err)
	}

	fmt.Println(isRegular, root.Type)
	// Output: true series_parallel
}
