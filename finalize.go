package decomposition

// Finalize performs a post-order walk from root, folding child verdicts
// into each parent's Regularity (spec.md §4.E):
//
//   - one_sum, two_sum, three_sum: regular iff all children regular;
//     irregular if any child irregular; otherwise unset (early-abort case).
//   - Terminal Type (graphic, cographic, r10, series_parallel, planar):
//     regular.
//   - Terminal Type = irregular: irregular (already set directly by S9;
//     this walk leaves it unchanged).
func Finalize(root *Node) {
	for _, child := range root.Children {
		Finalize(child)
	}

	if !root.IsLeaf() {
		foldComposition(root)

		return
	}

	switch root.Type {
	case TypeIrregular:
		root.Regularity = TagIrregular
	case TypeGraphic, TypeCographic, TypeR10, TypeSeriesParallel, TypePlanar:
		root.Regularity = TagRegular
	}
}

// foldComposition implements the composition fold for an internal node
// (one_sum/two_sum/three_sum, or any other multi-child composition type).
func foldComposition(n *Node) {
	sawIrregular := false
	sawUnset := false
	for _, child := range n.Children {
		switch child.Regularity {
		case TagIrregular:
			sawIrregular = true
		case TagUnset:
			sawUnset = true
		}
	}

	switch {
	case sawIrregular:
		n.Regularity = TagIrregular
	case sawUnset:
		n.Regularity = TagUnset
	default:
		n.Regularity = TagRegular
	}
}
