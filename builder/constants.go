package builder

import "fmt"

const (
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	methodWheel    = "Wheel"

	minCompleteNodes = 1
	minCycleNodes    = 3
	minWheelNodes    = 4 // outer cycle has size (n-1), which must be >= 3

	centerVertexID = "Center"
)

func vertexID(i int) string {
	return fmt.Sprintf("v%d", i)
}
