package alfred

import "os"

// Env returns the value of an alfred_<name> environment variable set by
// the launcher when it runs a workflow script.
func Env(name string) string {
	return os.Getenv("alfred_" + name)
}

// InAlfred reports whether the process was started by Alfred.
func InAlfred() bool {
	return os.Getenv("alfred_version") != ""
}

// BundleID returns the running workflow's bundle identifier.
func BundleID() string {
	return os.Getenv("alfred_workflow_bundleid")
}

// DataDir returns the workflow's persistent data directory.
func DataDir() string {
	return os.Getenv("alfred_workflow_data")
}

// CacheDir returns the workflow's volatile cache directory.
func CacheDir() string {
	return os.Getenv("alfred_workflow_cache")
}
