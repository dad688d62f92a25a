package distribution

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsep/internal/domain"
)

func keysWithCosts(costs ...int64) []domain.AggregationKey {
	keys := make([]domain.AggregationKey, len(costs))
	for i, c := range costs {
		name := fmt.Sprintf("k%02d", i)
		keys[i] = domain.AggregationKey{
			Key:             name,
			TotalCostMillis: c,
			Members:         []domain.TestRecord{{RelativeFilePath: name + ".php", TestName: name, EstimatedCostMillis: c}},
		}
	}
	return keys
}

func groupKeys(g domain.Group) []string {
	var names []string
	for _, k := range g.Keys {
		names = append(names, k.Key)
	}
	return names
}

func TestLPTScheduler_BalancedExample(t *testing.T) {
	assignment, err := NewLPTScheduler().Schedule(keysWithCosts(10, 40, 20, 30), 2)
	require.NoError(t, err)
	require.Len(t, assignment.Groups, 2)

	assert.Equal(t, int64(50), assignment.Groups[0].TotalCostMillis)
	assert.Equal(t, int64(50), assignment.Groups[1].TotalCostMillis)
	// 40 -> g0, 30 -> g1, 20 -> g1, 10 -> g0
	assert.Equal(t, []string{"k01", "k00"}, groupKeys(assignment.Groups[0]))
	assert.Equal(t, []string{"k03", "k02"}, groupKeys(assignment.Groups[1]))
	assert.Equal(t, int64(0), assignment.Spread())
}

func TestLPTScheduler_AtomicKey(t *testing.T) {
	records := make([]domain.TestRecord, 5)
	for i := range records {
		records[i] = domain.TestRecord{
			ParentPath:          "unit/",
			RelativeFilePath:    fmt.Sprintf("unit/T%dTest.php", i),
			EstimatedCostMillis: 10,
		}
	}
	keys, err := Aggregate(records, domain.DirectoryLevel)
	require.NoError(t, err)
	require.Len(t, keys, 1)

	assignment, err := NewLPTScheduler().Schedule(keys, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(50), assignment.Groups[0].TotalCostMillis)
	assert.Len(t, assignment.Groups[0].Records(), 5)
	assert.Empty(t, assignment.Groups[1].Keys)
	assert.Empty(t, assignment.Groups[2].Keys)
}

func TestLPTScheduler_EdgeCases(t *testing.T) {
	t.Run("zero keys", func(t *testing.T) {
		assignment, err := NewLPTScheduler().Schedule(nil, 3)
		require.NoError(t, err)
		require.Len(t, assignment.Groups, 3)
		for i, g := range assignment.Groups {
			assert.Equal(t, i, g.Index)
			assert.Empty(t, g.Keys)
		}
	})

	t.Run("more groups than keys", func(t *testing.T) {
		assignment, err := NewLPTScheduler().Schedule(keysWithCosts(5, 7), 4)
		require.NoError(t, err)
		assert.Equal(t, []string{"k01"}, groupKeys(assignment.Groups[0]))
		assert.Equal(t, []string{"k00"}, groupKeys(assignment.Groups[1]))
		assert.Empty(t, assignment.Groups[2].Keys)
		assert.Empty(t, assignment.Groups[3].Keys)
	})

	t.Run("ties broken by key then group index", func(t *testing.T) {
		keys := []domain.AggregationKey{
			{Key: "b", TotalCostMillis: 0},
			{Key: "c", TotalCostMillis: 0},
			{Key: "a", TotalCostMillis: 0},
		}
		assignment, err := NewLPTScheduler().Schedule(keys, 2)
		require.NoError(t, err)
		// Zero costs never raise a group above another, so the first group takes everything
		assert.Equal(t, []string{"a", "b", "c"}, groupKeys(assignment.Groups[0]))
	})

	t.Run("invalid group count", func(t *testing.T) {
		_, err := NewLPTScheduler().Schedule(keysWithCosts(1), 0)
		assert.ErrorIs(t, err, ErrInvalidGroupCount)
	})

	t.Run("input is not reordered", func(t *testing.T) {
		keys := keysWithCosts(1, 2, 3)
		_, err := NewLPTScheduler().Schedule(keys, 2)
		require.NoError(t, err)
		assert.Equal(t, "k00", keys[0].Key)
	})
}

func TestLPTScheduler_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	scheduler := NewLPTScheduler()

	for iteration := 0; iteration < 200; iteration++ {
		n := rng.Intn(60)
		groups := 1 + rng.Intn(8)
		records := make([]domain.TestRecord, n)
		for i := range records {
			dir := fmt.Sprintf("suite%d/", rng.Intn(5))
			records[i] = domain.TestRecord{
				ParentPath:          dir,
				RelativeFilePath:    fmt.Sprintf("%sT%dTest.php", dir, rng.Intn(15)),
				TestName:            fmt.Sprintf("test%d", i),
				EstimatedCostMillis: rng.Int63n(10000),
			}
		}

		for _, level := range domain.DepthLevels {
			keys, err := Aggregate(records, level)
			require.NoError(t, err)

			assignment, err := scheduler.Schedule(keys, groups)
			require.NoError(t, err)
			require.Len(t, assignment.Groups, groups)

			// Completeness: the same multiset of records comes out
			assert.ElementsMatch(t, records, assignment.Records())

			// Key integrity: every key lands in exactly one group
			owner := make(map[string]int)
			for _, g := range assignment.Groups {
				var total int64
				for _, k := range g.Keys {
					_, dup := owner[k.Key]
					assert.False(t, dup, "key %s assigned twice", k.Key)
					owner[k.Key] = g.Index
					total += k.TotalCostMillis
				}
				assert.Equal(t, total, g.TotalCostMillis)
			}
			assert.Len(t, owner, len(keys))

			// Balance bound: spread never exceeds the largest key
			var largest int64
			for _, k := range keys {
				largest = max(largest, k.TotalCostMillis)
			}
			assert.LessOrEqual(t, assignment.Spread(), largest)

			// Determinism
			again, err := scheduler.Schedule(keys, groups)
			require.NoError(t, err)
			assert.Equal(t, assignment, again)
		}
	}
}

func TestLPTScheduler_OrderIndependent(t *testing.T) {
	keys := keysWithCosts(9, 3, 7, 7, 1, 12, 4)
	shuffled := make([]domain.AggregationKey, len(keys))
	copy(shuffled, keys)
	sort.Slice(shuffled, func(i, j int) bool { return shuffled[i].Key > shuffled[j].Key })

	a, err := NewLPTScheduler().Schedule(keys, 3)
	require.NoError(t, err)
	b, err := NewLPTScheduler().Schedule(shuffled, 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
