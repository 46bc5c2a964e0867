package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconValid   = "✓" // Node lies on a valid path
	IconInvalid = " " // Unmarked node (no icon to reduce noise)
	IconRoot    = "●" // Tree root
	IconLeaf    = "·" // Leaf node
	IconMissing = "✗" // Source file could not be read
)
