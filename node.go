package decomposition

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/katalvlaran/cmr/matrix"
)

// RegularityTag is the ternary {unset, regular, irregular} alphabet shared by
// Node.Regularity, Node.Graphicness, and Node.Cographicness.
type RegularityTag int8

const (
	// TagUnset marks an attribute that has not been decided yet.
	TagUnset RegularityTag = iota
	// TagRegular marks a positive verdict.
	TagRegular
	// TagIrregular marks a negative verdict.
	TagIrregular
)

func (t RegularityTag) String() string {
	switch t {
	case TagRegular:
		return "regular"
	case TagIrregular:
		return "irregular"
	default:
		return "unset"
	}
}

// NodeType tags the composition or terminal recognizer a node settled into.
type NodeType string

// The fixed alphabet of node types, spec.md §3.
const (
	TypeUnknown        NodeType = "unknown"
	TypeOneSum         NodeType = "one_sum"
	TypeTwoSum         NodeType = "two_sum"
	TypeThreeSum       NodeType = "three_sum"
	TypeSeriesParallel NodeType = "series_parallel"
	TypeGraphic        NodeType = "graphic"
	TypeCographic      NodeType = "cographic"
	TypeR10            NodeType = "r10"
	TypePlanar         NodeType = "planar"
	TypeIrregular      NodeType = "irregular"
)

// sentinelIndex marks "never tested" for NestedMinorsLastGraphic/Cographic.
const sentinelIndex = -1

// Node represents one submatroid under investigation: the decomposition
// tree's unit of storage (spec.md §3, component A).
type Node struct {
	ID string

	Matrix    *matrix.Dense
	IsTernary bool

	// Parent is a non-owning back-reference, used only to climb to the true
	// root for CompleteDecomposition (spec.md §9 "Parent back-references").
	Parent   *Node
	Children []*Node

	Type          NodeType
	Regularity    RegularityTag
	Graphicness   RegularityTag
	Cographicness RegularityTag

	TestedTwoConnected   bool
	TestedR10            bool
	TestedSeriesParallel bool

	// DenseMatrix is the series-parallel kernel handed off to the
	// nested-minor extender (S6), present only after S5 leaves a nonempty
	// remainder.
	DenseMatrix *matrix.Dense

	// NestedMinorsMatrix is the chosen maximal nested-minor sequence's
	// representative matrix after S6 establishes a W3, or nil before that.
	NestedMinorsMatrix *matrix.Dense

	NestedMinorsLastGraphic   int
	NestedMinorsLastCographic int

	// Certificate is a name slot for a forbidden-minor witness (e.g. "F7"
	// for the Fano plane). No stage in this module recognises minors by
	// name, so it is always empty; the minor is the node's own matrix.
	Certificate string

	// Separator holds the three shared element names of a 3-sum split made
	// by S9 (separator rows, then separator columns, each in ascending
	// index order). S6's 2-sum splits share no elements and leave it empty.
	Separator []string
}

// NewRootNode allocates a root node: parent absent, all flags false, all
// tags unset/unknown (spec.md §4.A create_root).
func NewRootNode(m *matrix.Dense, isTernary bool) *Node {
	return &Node{
		ID:                        uuid.NewString(),
		Matrix:                    m,
		IsTernary:                 isTernary,
		Type:                      TypeUnknown,
		NestedMinorsLastGraphic:   sentinelIndex,
		NestedMinorsLastCographic: sentinelIndex,
	}
}

// newChildNode allocates a child node inheriting IsTernary from its parent,
// but otherwise fresh (spec.md §4.A attach_child, via AttachChild below).
func newChildNode(parent *Node, m *matrix.Dense) *Node {
	return &Node{
		ID:                        uuid.NewString(),
		Matrix:                    m,
		IsTernary:                 parent.IsTernary,
		Parent:                    parent,
		Type:                      TypeUnknown,
		NestedMinorsLastGraphic:   sentinelIndex,
		NestedMinorsLastCographic: sentinelIndex,
	}
}

// AttachChild appends child to parent.Children and sets its back-reference.
// Spec.md §3 invariant 4 requires children's element names to partition or
// refine the parent's; callers construct child.Matrix from a Submatrix of
// parent.Matrix so this holds by construction, and AttachChild only asserts
// the back-reference is consistent.
func AttachChild(parent, child *Node) error {
	if child.Parent != nil && child.Parent != parent {
		return newError(CodeInternalAssert, "AttachChild", ErrInternalAssert)
	}
	child.Parent = parent
	parent.Children = append(parent.Children, child)

	return nil
}

// Root climbs Parent back-references to the true root, used by
// CompleteDecomposition regardless of which subtree was handed in
// (original_source/'s "walk to true root, not just re-finalise the
// subtree" requirement).
func (n *Node) Root() *Node {
	cur := n
	for cur.Parent != nil {
		cur = cur.Parent
	}

	return cur
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// DumpMatrix writes n's matrix in the same format as matrix.Dense.String,
// a debug/test convenience (original_source/'s CMRchrmatPrintDense, gated
// behind CMR_DEBUG). No code path in the engine calls it.
func (n *Node) DumpMatrix(w io.Writer) error {
	if n.Matrix == nil {
		return nil
	}
	_, err := fmt.Fprint(w, n.Matrix.String())

	return err
}
