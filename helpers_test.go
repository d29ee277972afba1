package decomposition

import "time"

// zeroClock is a stand-in StartClock for tests that pass TimeLimit<=0,
// where checkTimeLimit never consults it.
func zeroClock() time.Time { return time.Time{} }
