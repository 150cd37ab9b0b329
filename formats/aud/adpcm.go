// SPDX-License-Identifier: EPL-2.0

package aud

var stepTable = [89]int32{
	7, 8, 9, 10, 11, 12, 13, 14,
	16, 17, 19, 21, 23, 25, 28, 31,
	34, 37, 41, 45, 50, 55, 60, 66,
	73, 80, 88, 97, 107, 118, 130, 143,
	157, 173, 190, 209, 230, 253, 279, 307,
	337, 371, 408, 449, 494, 544, 598, 658,
	724, 796, 876, 963, 1060, 1166, 1282, 1411,
	1552, 1707, 1878, 2066, 2272, 2499, 2749, 3024,
	3327, 3660, 4026, 4428, 4871, 5358, 5894, 6484,
	7132, 7845, 8630, 9493, 10442, 11487, 12635, 13899,
	15289, 16818, 18500, 20350, 22385, 24623, 27086, 29794,
	32767,
}

var indexTable = [16]int32{
	-1, -1, -1, -1, 2, 4, 6, 8,
	-1, -1, -1, -1, 2, 4, 6, 8,
}

const maxStepIndex = int32(len(stepTable) - 1)

// adpcmState is the predictor and step index carried between nibbles.
type adpcmState struct {
	predictor int32
	index     int32
}

func newState(seed int16, index uint8) adpcmState {
	return adpcmState{
		predictor: int32(seed),
		index:     min(int32(index), maxStepIndex),
	}
}

// next decodes one 4-bit code and advances the state.
func (s *adpcmState) next(code uint8) int16 {
	code &= 0x0f
	step := stepTable[s.index]

	diff := step >> 3
	if code&1 != 0 {
		diff += step >> 2
	}
	if code&2 != 0 {
		diff += step >> 1
	}
	if code&4 != 0 {
		diff += step
	}
	if code&8 != 0 {
		diff = -diff
	}

	s.predictor = min(max(s.predictor+diff, -32768), 32767)
	s.index = min(max(s.index+indexTable[code], 0), maxStepIndex)

	return int16(s.predictor)
}
