package domain

// AggregationKey is the unit of atomic assignment to a group
type AggregationKey struct {
	Key             string
	TotalCostMillis int64
	Members         []TestRecord
}

// Group is one output partition
type Group struct {
	Index           int
	TotalCostMillis int64
	Keys            []AggregationKey // In assignment order
}

// Records returns the member records of every key in the group
func (g *Group) Records() []TestRecord {
	var records []TestRecord
	for _, k := range g.Keys {
		records = append(records, k.Members...)
	}
	return records
}

// Files returns the relative file paths of the group, deduplicated, in assignment order
func (g *Group) Files() []string {
	seen := make(map[string]bool)
	var files []string
	for _, k := range g.Keys {
		for _, m := range k.Members {
			if seen[m.RelativeFilePath] {
				continue
			}
			seen[m.RelativeFilePath] = true
			files = append(files, m.RelativeFilePath)
		}
	}
	return files
}

// GroupAssignment is the result of distributing keys into groups
type GroupAssignment struct {
	Groups []Group
}

// Records returns every record across all groups
func (a *GroupAssignment) Records() []TestRecord {
	var records []TestRecord
	for i := range a.Groups {
		records = append(records, a.Groups[i].Records()...)
	}
	return records
}

// Spread returns the difference between the largest and smallest group totals
func (a *GroupAssignment) Spread() int64 {
	if len(a.Groups) == 0 {
		return 0
	}
	lo, hi := a.Groups[0].TotalCostMillis, a.Groups[0].TotalCostMillis
	for _, g := range a.Groups[1:] {
		lo = min(lo, g.TotalCostMillis)
		hi = max(hi, g.TotalCostMillis)
	}
	return hi - lo
}
