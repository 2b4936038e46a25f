// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clamping
// to [-1, 1] first. Scaling is symmetric by 32767 so -1 and +1 map to
// equal magnitudes.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}
