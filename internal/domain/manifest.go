package domain

// ManifestMeta contains metadata about a separation run
type ManifestMeta struct {
	Strategy        string `json:"strategy"`
	PrimaryStrategy string `json:"primary_strategy"`
	DepthLevel      string `json:"depth_level"`
	Groups          int    `json:"groups"`
	TotalTests      int    `json:"total_tests"`
	TotalKeys       int    `json:"total_keys"`
	TotalCostMillis int64  `json:"total_cost_millis"`
	SpreadMillis    int64  `json:"spread_millis"`
}

// ManifestGroup describes one written group file
type ManifestGroup struct {
	Index           int      `json:"index"`
	File            string   `json:"file"`
	TotalCostMillis int64    `json:"total_cost_millis"`
	Keys            []string `json:"keys"`
	Files           []string `json:"files"`
}

// Manifest is the complete summary written next to the group files
type Manifest struct {
	Meta   ManifestMeta    `json:"meta"`
	Groups []ManifestGroup `json:"groups"`
}
