package domain

// Zero overwrites a byte slice with zeros to clear sensitive data from memory.
//
// This is best effort: in a garbage-collected runtime earlier copies of the
// data may survive until collected. This is an accepted residual risk.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
