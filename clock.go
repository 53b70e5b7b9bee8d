package marbles

import "github.com/zoobzio/clockz"

// Clock provides wall-clock time to the host-side helpers (Monitor,
// Sandbox). Operators never read it: their time axis is simulated.
type Clock = clockz.Clock

// RealClock is the default Clock using standard time.
var RealClock Clock = clockz.RealClock
