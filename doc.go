// Package decomposition implements Seymour's regular-matroid decomposition
// theorem as a work-queue driver: given a sparse 0/1 or {-1,0,1}
// characteristic matrix, it decides whether the matrix represents a regular
// matroid and, if so, produces a decomposition tree witnessing regularity
// via 1-sums, 2-sums, 3-sums, series-parallel reduction, graphic/cographic
// recognition, and R10 recognition. If the matrix is irregular, it surfaces
// a small forbidden-minor certificate.
//
// The engine is a LIFO task queue (Task, Queue) pumping Node values through
// a fixed nine-stage dispatch table (dispatch, in dispatcher.go): each stage
// either finishes a node, splits it into children and pushes one task per
// child, or advances a pipeline flag and re-pushes the same node so the
// dispatcher falls through to the next rule. Test and CompleteDecomposition
// are the two entry points (driver.go).
//
// Subpackages core, matrix, bfs, and flow are trimmed, purpose-built
// primitives this engine consumes: matrix.Dense is the characteristic
// matrix representation with GF(2)/GF(3) pivoting; core.Graph and bfs carry
// the bipartite row/column search the wheel-minor stage walks; flow.Dinic
// backs a Menger's-theorem vertex-cut cross-check for 3-separations.
package decomposition
