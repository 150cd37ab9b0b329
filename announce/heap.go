// SPDX-License-Identifier: EPL-2.0

package announce

// entry is one queued line.
type entry struct {
	voice    Voice
	priority uint8
	queuedAt uint32
	seq      uint64
}

// entryHeap implements heap.Interface: highest priority first, then the
// earliest enqueue time, then arrival order.
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	if a.queuedAt != b.queuedAt {
		// wraparound-safe "a before b"
		return int32(a.queuedAt-b.queuedAt) < 0
	}
	return a.seq < b.seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
