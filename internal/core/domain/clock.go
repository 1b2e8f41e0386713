package domain

import "time"

// Now returns the current UTC time truncated to the millisecond, the finest
// precision a BSON date keeps. Values stamped with it read back unchanged.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
