package discovery

// Entry represents a discovered git repository
type Entry struct {
	Display string `json:"display"` // Path relative to the scan root, or "owner/repo"
	Path    string `json:"path"`    // Full path to the repository
}
