// Package cases holds functions classified by the command tests.
package cases

// Checksum is inside the fragile cluster.
func Checksum(data []byte, seed uint32) uint32 {
	h := seed
	for _, b := range data {
		h = h*31 + uint32(b)
	}
	return h
}

// Identity is outside of it.
func Identity(v int) int {
	return v * 1
}
