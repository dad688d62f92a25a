package builder

import (
	"context"
	"fmt"

	"tsep/internal/config"
	"tsep/internal/discovery"
	"tsep/internal/domain"
	"tsep/internal/strategy"
)

// MethodSizeBuilder builds the collection from the test files of the suite directories.
// Every test method weighs the same, so a file costs as much as the methods it declares.
type MethodSizeBuilder struct {
	config *config.Config
	parser *discovery.Parser
	filter *discovery.Filter
}

// NewMethodSizeBuilder creates a new MethodSizeBuilder
func NewMethodSizeBuilder(cfg *config.Config, parser *discovery.Parser, filter *discovery.Filter) *MethodSizeBuilder {
	return &MethodSizeBuilder{config: cfg, parser: parser, filter: filter}
}

// Build lists each suite directory (one level) in configuration order
func (b *MethodSizeBuilder) Build(ctx context.Context) (*domain.Collection, error) {
	rel := newRelativizer(b.config.GetTestsDirectoryPrefixes())
	collection := &domain.Collection{Strategy: string(strategy.MethodSize)}
	weight := b.config.MethodWeightMillis

	for _, dir := range b.config.SuitesDirectories {
		files, err := discovery.ListRegularFiles(dir)
		if err != nil {
			return nil, fmt.Errorf("list suite directory: %w", err)
		}

		for _, file := range b.filter.FilterByName(files) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			methods, err := b.parser.FindTestCases(file)
			if err != nil {
				return nil, err
			}
			if len(methods) == 0 {
				// Keep the file so it still runs somewhere
				collection.Records = append(collection.Records, rel.record(file, "", weight))
				continue
			}
			for _, method := range methods {
				collection.Records = append(collection.Records, rel.record(file, method, weight))
			}
		}
	}

	collection.UnresolvedPaths = rel.unresolved
	return collection, nil
}
