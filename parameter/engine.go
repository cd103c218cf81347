package parameter

import "time"

// TurnInterval is the default wall time between turns
const TurnInterval = 333 * time.Millisecond
