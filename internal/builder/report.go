package builder

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"tsep/internal/config"
	"tsep/internal/discovery"
	"tsep/internal/domain"
	"tsep/internal/strategy"
)

// reportCase is one <testcase> entry of a Codeception/JUnit report
type reportCase struct {
	Name string
	Time string
	File string
}

// ReportBuilder builds the collection from the XML reports of a previous run
type ReportBuilder struct {
	config   *config.Config
	progress Progress
}

// NewReportBuilder creates a new ReportBuilder. progress may be nil.
func NewReportBuilder(cfg *config.Config, progress Progress) *ReportBuilder {
	if progress == nil {
		progress = noProgress{}
	}
	return &ReportBuilder{config: cfg, progress: progress}
}

// Build parses every report in the reports directory. Reports are read concurrently
// and merged in listing order, so the output does not depend on scheduling.
func (b *ReportBuilder) Build(ctx context.Context) (*domain.Collection, error) {
	files, err := discovery.ListRegularFiles(b.config.CodeceptionReportsDir)
	if err != nil {
		return nil, err
	}

	cases := make([][]reportCase, len(files))
	parseErrs := make([]error, len(files))

	b.progress.Start(len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.config.GetWorkers())
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read report %s: %w", file, err)
			}
			cases[i], parseErrs[i] = parseReport(data)
			b.progress.Increment()
			return nil
		})
	}
	err = g.Wait()
	b.progress.Finish()
	if err != nil {
		return nil, err
	}

	rel := newRelativizer(b.config.GetTestsDirectoryPrefixes())
	collection := &domain.Collection{Strategy: string(strategy.Codeception)}
	for i, file := range files {
		if parseErrs[i] != nil {
			if !b.config.SkipMalformedReports {
				return nil, &ParseError{Path: file, Err: parseErrs[i]}
			}
			collection.SkippedReports = append(collection.SkippedReports, file)
			continue
		}
		records, err := toRecords(rel, cases[i])
		if err != nil {
			if !b.config.SkipMalformedReports {
				return nil, &ParseError{Path: file, Err: err}
			}
			collection.SkippedReports = append(collection.SkippedReports, file)
			continue
		}
		collection.Records = append(collection.Records, records...)
	}
	collection.UnresolvedPaths = rel.unresolved
	return collection, nil
}

// parseReport returns the test cases of a report in document order
func parseReport(data []byte) ([]reportCase, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var cases []reportCase
	depth := 0
	sawRoot := false

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if t.Name.Local != "testsuites" && t.Name.Local != "testsuite" {
					return nil, fmt.Errorf("unexpected root element <%s>", t.Name.Local)
				}
				sawRoot = true
			}
			depth++
			if t.Name.Local == "testcase" {
				cases = append(cases, reportCase{
					Name: attr(t, "name"),
					Time: attr(t, "time"),
					File: attr(t, "file"),
				})
			}
		case xml.EndElement:
			depth--
		}
	}

	if !sawRoot {
		return nil, errors.New("no testsuite element found")
	}
	return cases, nil
}

func toRecords(rel *relativizer, cases []reportCase) ([]domain.TestRecord, error) {
	records := make([]domain.TestRecord, 0, len(cases))
	for _, c := range cases {
		record, err := toRecord(rel, c)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func toRecord(rel *relativizer, c reportCase) (domain.TestRecord, error) {
	name := firstToken(c.Name)
	if name == "" {
		return domain.TestRecord{}, errors.New("testcase without name")
	}
	if c.File == "" {
		return domain.TestRecord{}, fmt.Errorf("testcase %s without file", name)
	}
	cost, err := parseMillis(c.Time)
	if err != nil {
		return domain.TestRecord{}, fmt.Errorf("testcase %s: %w", name, err)
	}
	return rel.record(c.File, name, cost), nil
}

// parseMillis converts fractional seconds to milliseconds, truncating
func parseMillis(seconds string) (int64, error) {
	seconds = strings.TrimSpace(seconds)
	if seconds == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(seconds, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", seconds)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid time %q", seconds)
	}
	if f < 0 {
		return 0, fmt.Errorf("negative time %q", seconds)
	}
	if f*1000 >= math.MaxInt64 {
		return 0, fmt.Errorf("time %q out of range", seconds)
	}
	return int64(f * 1000), nil
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
