package gost

import "math/bits"

const rounds = 32

// rotl11 rotates `s` left by 11 bits.
func rotl11(s uint32) uint32 {
	return bits.RotateLeft32(s, 11)
}

// mix is one Feistel round. The old right half becomes the new left
// half; callers must not swap the halves again.
func mix(sb *SBox, left, right, subkey uint32) (uint32, uint32) {
	return right, left ^ rotl11(sb.Substitute(right^subkey))
}

// network runs all rounds over `block` with the given subkey order.
// The swap of the final round is kept in the output.
func network(sb *SBox, order *[rounds]uint32, block uint64) uint64 {
	left, right := uint32(block>>32), uint32(block)
	for _, k := range order {
		left, right = mix(sb, left, right, k)
	}

	return uint64(right)<<32 | uint64(left)
}

// encryptOrder is K0..K7 three times, then K7..K0.
func encryptOrder(ks SubkeySet) (order [rounds]uint32) {
	for i := 0; i < 24; i++ {
		order[i] = ks[i%numSubkeys]
	}

	for i := 0; i < numSubkeys; i++ {
		order[24+i] = ks[numSubkeys-1-i]
	}

	return order
}

// decryptOrder is the exact reverse of encryptOrder:
// K0..K7 once, then K7..K0 three times.
func decryptOrder(ks SubkeySet) (order [rounds]uint32) {
	for i := 0; i < numSubkeys; i++ {
		order[i] = ks[i]
	}

	for i := 0; i < 24; i++ {
		order[numSubkeys+i] = ks[numSubkeys-1-i%numSubkeys]
	}

	return order
}
