package ui

import "tsep/internal/domain"

// Viewer displays a group manifest in an interactive TUI
type Viewer interface {
	View(manifest *domain.Manifest) error
}
