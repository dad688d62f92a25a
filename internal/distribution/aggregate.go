package distribution

import (
	"fmt"

	"tsep/internal/domain"
)

// KeyFor returns the aggregation key of a record at the given depth level
func KeyFor(r domain.TestRecord, level domain.DepthLevel) (string, error) {
	switch level {
	case domain.DirectoryLevel:
		return r.ParentPath, nil
	case domain.ClassLevel:
		return r.RelativeFilePath, nil
	case domain.MethodLevel:
		// Codeception filter syntax: path:method
		return r.RelativeFilePath + ":" + r.TestName, nil
	}
	return "", fmt.Errorf("unknown depth level %q", level)
}

// Aggregate groups records by key. Keys appear in the order their first record appears,
// and members keep input order.
func Aggregate(records []domain.TestRecord, level domain.DepthLevel) ([]domain.AggregationKey, error) {
	index := make(map[string]int)
	var keys []domain.AggregationKey

	for _, r := range records {
		key, err := KeyFor(r, level)
		if err != nil {
			return nil, err
		}
		i, ok := index[key]
		if !ok {
			i = len(keys)
			index[key] = i
			keys = append(keys, domain.AggregationKey{Key: key})
		}
		keys[i].TotalCostMillis += r.EstimatedCostMillis
		keys[i].Members = append(keys[i].Members, r)
	}
	return keys, nil
}
