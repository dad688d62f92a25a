package separator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tsep/internal/builder"
	"tsep/internal/config"
	"tsep/internal/distribution"
	"tsep/internal/storage"
	"tsep/internal/strategy"
)

const report = `<?xml version="1.0" encoding="UTF-8"?>
<testsuites>
  <testsuite name="unit">
    <testcase name="testA" file="%TESTS%/unit/ATest.php" time="4"/>
    <testcase name="testB" file="%TESTS%/unit/BTest.php" time="3"/>
    <testcase name="testC" file="%TESTS%/unit/CTest.php" time="2"/>
    <testcase name="testD" file="%TESTS%/unit/DTest.php" time="1"/>
    <testcase name="testOut" file="/outside/OutTest.php" time="0.5"/>
  </testsuite>
</testsuites>
`

type project struct {
	root, tests, reports, results string
}

func newProject(t *testing.T) project {
	t.Helper()
	root := t.TempDir()
	p := project{
		root:    root,
		tests:   filepath.Join(root, "tests"),
		reports: filepath.Join(root, "tests", "_output"),
		results: filepath.Join(root, "tests", "_groups"),
	}
	for _, dir := range []string{p.tests, p.reports, p.results} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}
	return p
}

func (p project) writeReport(t *testing.T) {
	t.Helper()
	content := []byte(strings.ReplaceAll(report, "%TESTS%", p.tests))
	require.NoError(t, os.WriteFile(filepath.Join(p.reports, "report.xml"), content, 0644))
}

func (p project) config() *config.Config {
	cfg := config.New()
	cfg.Strategy = string(strategy.Codeception)
	cfg.TestsDirectory = p.tests
	cfg.ResultPath = p.results
	cfg.CodeceptionReportsDir = p.reports
	cfg.DepthLevel = "class"
	cfg.Groups = 2
	return cfg
}

func newService(cfg *config.Config, logger *zap.Logger) *Service {
	return NewService(cfg, strategy.NewResolver(cfg), distribution.NewLPTScheduler(), storage.NewFileStorage(cfg), logger)
}

func TestService_Run(t *testing.T) {
	p := newProject(t)
	p.writeReport(t)

	core, logs := observer.New(zapcore.DebugLevel)
	result, err := newService(p.config(), zap.New(core)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, strategy.Codeception, result.Resolution.Active)
	assert.Len(t, result.Collection.Records, 5)
	assert.Len(t, result.Keys, 5)

	// 4000 -> g0, 3000 -> g1, 2000 -> g1, 1000 -> g0, 500 -> g0
	group0, err := os.ReadFile(filepath.Join(p.results, "group_0.txt"))
	require.NoError(t, err)
	assert.Equal(t, "unit/ATest.php\nunit/DTest.php\n/outside/OutTest.php\n", string(group0))

	group1, err := os.ReadFile(filepath.Join(p.results, "group_1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "unit/BTest.php\nunit/CTest.php\n", string(group1))

	assert.Equal(t, int64(5500), result.Manifest.Groups[0].TotalCostMillis)
	assert.Equal(t, int64(5000), result.Manifest.Groups[1].TotalCostMillis)

	warnings := logs.FilterMessage("Test file is outside the tests directory, using path unmodified").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "/outside/OutTest.php", warnings[0].ContextMap()["path"])
}

func TestService_RunIsDeterministic(t *testing.T) {
	p := newProject(t)
	p.writeReport(t)
	cfg := p.config()
	cfg.DepthLevel = "method"
	cfg.Groups = 3

	read := func() map[string]string {
		out := make(map[string]string)
		entries, err := os.ReadDir(p.results)
		require.NoError(t, err)
		for _, e := range entries {
			data, err := os.ReadFile(filepath.Join(p.results, e.Name()))
			require.NoError(t, err)
			out[e.Name()] = string(data)
		}
		return out
	}

	_, err := newService(cfg, nil).Run(context.Background())
	require.NoError(t, err)
	first := read()

	_, err = newService(cfg, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, read())
	assert.Len(t, first, 4)
}

func TestService_FallbackToDefaultGroups(t *testing.T) {
	p := newProject(t)
	groups := filepath.Join(p.root, "default-groups")
	require.NoError(t, os.MkdirAll(groups, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(groups, "smoke.txt"),
		[]byte(p.tests+"/unit/ATest.php\n"+p.tests+"/unit/BTest.php\n"), 0644))

	cfg := p.config()
	cfg.UseDefaultStrategies = true
	cfg.DefaultStrategies = []string{string(strategy.MethodSize), string(strategy.DefaultGroups)}
	cfg.DefaultGroupsDir = groups

	core, logs := observer.New(zapcore.InfoLevel)
	result, err := newService(cfg, zap.New(core)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, strategy.DefaultGroups, result.Resolution.Active)
	assert.Equal(t, "default-groups", result.Manifest.Meta.Strategy)
	assert.Equal(t, "codeception", result.Manifest.Meta.PrimaryStrategy)
	assert.Equal(t, []string{"unit/ATest.php"}, result.Manifest.Groups[0].Files)
	assert.Equal(t, []string{"unit/BTest.php"}, result.Manifest.Groups[1].Files)

	assert.Equal(t, 1, logs.FilterMessage("Primary strategy is invalid").Len())
	invalid := logs.FilterMessage("Default strategy is invalid").All()
	require.Len(t, invalid, 1)
	assert.Equal(t, "method-size", invalid[0].ContextMap()["strategy"])
	assert.Equal(t, 1, logs.FilterMessage("Using default strategy").Len())

	// The original configuration is left as it was
	assert.Equal(t, "codeception", cfg.Strategy)
}

func TestService_Errors(t *testing.T) {
	t.Run("configuration errors stop before resolving", func(t *testing.T) {
		p := newProject(t)
		cfg := p.config()
		cfg.DepthLevel = "package"

		result, err := newService(cfg, nil).Run(context.Background())
		assert.ErrorIs(t, err, config.ErrUnknownDepthLevel)
		assert.Nil(t, result.Resolution)
	})

	t.Run("fallback exhausted", func(t *testing.T) {
		p := newProject(t)
		cfg := p.config()
		cfg.UseDefaultStrategies = true
		cfg.DefaultStrategies = []string{string(strategy.MethodSize)}

		_, err := newService(cfg, nil).Run(context.Background())
		assert.ErrorIs(t, err, strategy.ErrAllDefaultsInvalid)
	})

	t.Run("malformed report fails the run", func(t *testing.T) {
		p := newProject(t)
		require.NoError(t, os.WriteFile(filepath.Join(p.reports, "broken.xml"), []byte("<testsuites>"), 0644))

		_, err := newService(p.config(), nil).Run(context.Background())
		assert.ErrorIs(t, err, builder.ErrMalformedReport)
		assert.NoFileExists(t, filepath.Join(p.results, storage.SummaryFile))
	})
}

func TestService_PlanDoesNotWrite(t *testing.T) {
	p := newProject(t)
	p.writeReport(t)

	result, err := newService(p.config(), nil).Plan(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.Manifest)
	assert.Len(t, result.Manifest.Groups, 2)

	entries, err := os.ReadDir(p.results)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
