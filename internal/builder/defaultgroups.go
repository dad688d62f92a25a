package builder

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"tsep/internal/config"
	"tsep/internal/discovery"
	"tsep/internal/domain"
	"tsep/internal/strategy"
)

// DefaultGroupsBuilder builds the collection from hand-maintained group lists.
// Each regular file of the directory lists one test path per line, optionally
// followed by ":method". Blank lines and lines starting with # are ignored.
type DefaultGroupsBuilder struct {
	config *config.Config
}

// NewDefaultGroupsBuilder creates a new DefaultGroupsBuilder
func NewDefaultGroupsBuilder(cfg *config.Config) *DefaultGroupsBuilder {
	return &DefaultGroupsBuilder{config: cfg}
}

// Build reads the group lists in listing order. An entry listed twice is kept once.
func (b *DefaultGroupsBuilder) Build(ctx context.Context) (*domain.Collection, error) {
	files, err := discovery.ListRegularFiles(b.config.DefaultGroupsDir)
	if err != nil {
		return nil, err
	}

	rel := newRelativizer(b.config.GetTestsDirectoryPrefixes())
	collection := &domain.Collection{Strategy: string(strategy.DefaultGroups)}
	seen := make(map[string]bool)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read group list %s: %w", file, err)
		}

		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			entry := strings.TrimSpace(scanner.Text())
			if entry == "" || strings.HasPrefix(entry, "#") || seen[entry] {
				continue
			}
			seen[entry] = true
			path, method := splitEntry(entry)
			collection.Records = append(collection.Records, rel.record(path, method, b.config.MethodWeightMillis))
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read group list %s: %w", file, err)
		}
	}

	collection.UnresolvedPaths = rel.unresolved
	return collection, nil
}

// splitEntry separates "tests/unit/UserTest.php:testLogin" into path and method
func splitEntry(entry string) (string, string) {
	i := strings.LastIndex(entry, ":")
	if i <= 0 || i == len(entry)-1 || strings.ContainsAny(entry[i+1:], `/\.`) {
		return entry, ""
	}
	return entry[:i], entry[i+1:]
}
