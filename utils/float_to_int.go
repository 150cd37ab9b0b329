// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 scales a sample in [-1,1] to int16, clamping anything
// outside that range.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 for the positive side keeps 1.0 from overflowing.
	return int16(x * 32767.0)
}

// Int16ToFloat32 is the inverse scaling used when streaming decoded clips.
func Int16ToFloat32(s int16) float32 {
	return float32(s) / 32768.0
}
