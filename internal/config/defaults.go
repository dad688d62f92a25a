package config

const (
	// DefaultConfigFile is the config file looked up when no path is given
	DefaultConfigFile = "tsep.yaml"
	// DefaultStrategy is the default separating strategy
	DefaultStrategy = "method-size"
	// DefaultTestsDirectory is the default base tests directory
	DefaultTestsDirectory = "tests/"
	// DefaultResultPath is the default directory for group manifests
	DefaultResultPath = "tests/_groups/"
	// DefaultDepthLevel is the default grouping granularity
	DefaultDepthLevel = "class"
	// DefaultGroups is the default number of groups
	DefaultGroups = 4
	// DefaultFilePattern matches test files for the method-size strategy
	DefaultFilePattern = "*Test.php"
	// DefaultMethodWeightMillis is the synthetic cost of one test method
	DefaultMethodWeightMillis = 1000
	// DefaultWorkers bounds concurrent report parsing
	DefaultWorkers = 4
	// DefaultGroupFilePrefix names group manifests as <prefix><index>.txt
	DefaultGroupFilePrefix = "group_"
	// EnvPrefix is the prefix of environment overrides
	EnvPrefix = "TSEP_"
)

// DefaultStrategies are tried in order when the primary strategy is invalid
var DefaultStrategies = []string{
	"method-size",
	"default-groups",
}
