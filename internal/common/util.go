package common

// WipeByteArray overwrites the slice with zeros. Used for passwords that
// should not linger in memory after use.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
