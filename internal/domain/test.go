package domain

// TestRecord represents one test occurrence collected from a report or a source tree
type TestRecord struct {
	ParentPath          string // Directory of the owning suite, relative, with trailing slash
	AbsoluteFilePath    string // Path to the source file as found on disk or in the report
	RelativeFilePath    string // Path relative to the tests directory
	TestName            string // First token of the test case name
	EstimatedCostMillis int64  // Measured duration or structural weight
}

// Collection is the output of a collection builder
type Collection struct {
	Strategy string
	Records  []TestRecord

	// UnresolvedPaths lists file paths that did not start with the tests directory
	// and were kept unmodified as relative paths.
	UnresolvedPaths []string

	// SkippedReports lists malformed report files dropped when skipping is enabled.
	SkippedReports []string
}

// TotalCostMillis sums the estimated cost of all records
func (c *Collection) TotalCostMillis() int64 {
	var total int64
	for _, r := range c.Records {
		total += r.EstimatedCostMillis
	}
	return total
}
