package distribution

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"

	"tsep/internal/domain"
)

// ErrInvalidGroupCount is returned when fewer than one group is requested
var ErrInvalidGroupCount = errors.New("group count must be at least 1")

// Scheduler distributes aggregation keys across groups
type Scheduler interface {
	Schedule(keys []domain.AggregationKey, groupCount int) (*domain.GroupAssignment, error)
}

// LPTScheduler assigns the most expensive remaining key to the least loaded group
// (longest processing time first). Keys are never split.
type LPTScheduler struct{}

// NewLPTScheduler creates a new LPTScheduler
func NewLPTScheduler() *LPTScheduler {
	return &LPTScheduler{}
}

// Schedule sorts keys by cost descending (key ascending on ties) and places each on the group
// with the lowest running total (lowest index on ties). Groups keep keys in assignment order.
func (s *LPTScheduler) Schedule(keys []domain.AggregationKey, groupCount int) (*domain.GroupAssignment, error) {
	if groupCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGroupCount, groupCount)
	}

	sorted := make([]domain.AggregationKey, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalCostMillis != sorted[j].TotalCostMillis {
			return sorted[i].TotalCostMillis > sorted[j].TotalCostMillis
		}
		return sorted[i].Key < sorted[j].Key
	})

	assignment := &domain.GroupAssignment{Groups: make([]domain.Group, groupCount)}
	loads := make(groupHeap, groupCount)
	for i := range groupCount {
		assignment.Groups[i].Index = i
		loads[i] = groupLoad{index: i}
	}
	heap.Init(&loads)

	for _, key := range sorted {
		lightest := &loads[0]
		group := &assignment.Groups[lightest.index]
		group.Keys = append(group.Keys, key)
		group.TotalCostMillis += key.TotalCostMillis
		lightest.total = group.TotalCostMillis
		heap.Fix(&loads, 0)
	}
	return assignment, nil
}

type groupLoad struct {
	index int
	total int64
}

// groupHeap is a min-heap of groups by running total, then index
type groupHeap []groupLoad

func (h groupHeap) Len() int { return len(h) }
func (h groupHeap) Less(i, j int) bool {
	if h[i].total != h[j].total {
		return h[i].total < h[j].total
	}
	return h[i].index < h[j].index
}
func (h groupHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *groupHeap) Push(x any)   { *h = append(*h, x.(groupLoad)) }
func (h *groupHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
