package storage

import (
	"tsep/internal/config"
	"tsep/internal/domain"
)

// SummaryFile is the JSON summary written next to the group manifests
const SummaryFile = "groups.json"

// Storage persists group manifests and loads the last summary (e.g. for the show command).
type Storage interface {
	Write(assignment *domain.GroupAssignment, meta domain.ManifestMeta) (*domain.Manifest, error)
	Load() (*domain.Manifest, error)
}

// FileStorage writes one text manifest per group plus a JSON summary into the result path.
type FileStorage struct {
	cfg *config.Config
}

// NewFileStorage returns a Storage writing into the config's result path.
func NewFileStorage(cfg *config.Config) *FileStorage {
	return &FileStorage{cfg: cfg}
}
