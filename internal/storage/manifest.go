package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tsep/internal/domain"
)

// Write replaces the manifests in the result path with the given assignment.
// Each group file lists its relative test file paths, deduplicated, one per line.
func (s *FileStorage) Write(assignment *domain.GroupAssignment, meta domain.ManifestMeta) (*domain.Manifest, error) {
	dir := s.cfg.ResultPath
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create result dir %s: %w", dir, err)
	}
	if err := s.removeStale(dir); err != nil {
		return nil, err
	}

	manifest := BuildManifest(assignment, meta, s.cfg.GroupFilePrefix)
	for _, group := range manifest.Groups {
		path := filepath.Join(dir, group.File)
		var content strings.Builder
		for _, file := range group.Files {
			content.WriteString(file)
			content.WriteByte('\n')
		}
		if err := os.WriteFile(path, []byte(content.String()), 0644); err != nil {
			return nil, fmt.Errorf("write group manifest %s: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	path := filepath.Join(dir, SummaryFile)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return nil, fmt.Errorf("write summary %s: %w", path, err)
	}
	return manifest, nil
}

// Load reads the summary of the last written assignment.
func (s *FileStorage) Load() (*domain.Manifest, error) {
	path := filepath.Join(s.cfg.ResultPath, SummaryFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read summary file: %w", err)
	}
	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse summary %s: %w", path, err)
	}
	return &manifest, nil
}

// BuildManifest describes an assignment without writing it.
func BuildManifest(assignment *domain.GroupAssignment, meta domain.ManifestMeta, prefix string) *domain.Manifest {
	manifest := &domain.Manifest{Meta: meta, Groups: make([]domain.ManifestGroup, 0, len(assignment.Groups))}
	manifest.Meta.Groups = len(assignment.Groups)
	manifest.Meta.SpreadMillis = assignment.Spread()
	manifest.Meta.TotalKeys, manifest.Meta.TotalTests, manifest.Meta.TotalCostMillis = 0, 0, 0

	for i := range assignment.Groups {
		group := &assignment.Groups[i]
		keys := make([]string, 0, len(group.Keys))
		for _, k := range group.Keys {
			keys = append(keys, k.Key)
			manifest.Meta.TotalTests += len(k.Members)
		}
		files := group.Files()
		if files == nil {
			files = []string{}
		}
		manifest.Meta.TotalKeys += len(keys)
		manifest.Meta.TotalCostMillis += group.TotalCostMillis
		manifest.Groups = append(manifest.Groups, domain.ManifestGroup{
			Index:           group.Index,
			File:            fmt.Sprintf("%s%d.txt", prefix, group.Index),
			TotalCostMillis: group.TotalCostMillis,
			Keys:            keys,
			Files:           files,
		})
	}
	return manifest
}

// removeStale deletes group manifests left by a previous run with more groups
func (s *FileStorage) removeStale(dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, globEscape(s.cfg.GroupFilePrefix)+"*.txt"))
	if err != nil {
		return fmt.Errorf("list stale manifests: %w", err)
	}
	for _, m := range matches {
		if !isGroupFile(filepath.Base(m), s.cfg.GroupFilePrefix) {
			continue
		}
		if info, err := os.Lstat(m); err != nil || !info.Mode().IsRegular() {
			continue
		}
		if err := os.Remove(m); err != nil {
			return fmt.Errorf("remove stale manifest %s: %w", m, err)
		}
	}
	return nil
}

// isGroupFile reports whether name is <prefix><index>.txt
func isGroupFile(name, prefix string) bool {
	index, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return false
	}
	index, ok = strings.CutSuffix(index, ".txt")
	if !ok || index == "" {
		return false
	}
	for _, r := range index {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func globEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`*?[]\`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
