package alfred

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	flowerrors "nikiv.dev/flow/pkg/errors"
)

// WorkflowsDir locates Alfred's workflows directory. A configured sync
// folder (read through `defaults`) takes precedence over the default
// location under ~/Library. The default location is created if its
// parent exists, so a fresh Alfred install still works.
func WorkflowsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", flowerrors.Wrap(err, "failed to get home directory")
	}

	if out, err := exec.Command("defaults", "read", "com.runningwithcrayons.Alfred-Preferences", "syncfolder").Output(); err == nil {
		syncFolder := strings.TrimSpace(string(out))
		if strings.HasPrefix(syncFolder, "~") {
			syncFolder = filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(syncFolder, "~"), "/"))
		}
		path := filepath.Join(syncFolder, "Alfred.alfredpreferences", "workflows")
		if isDir(path) {
			return path, nil
		}
	}

	path := filepath.Join(home, "Library", "Application Support", "Alfred", "Alfred.alfredpreferences", "workflows")
	if isDir(path) {
		return path, nil
	}
	if isDir(filepath.Dir(path)) {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return "", flowerrors.Wrap(err, "failed to create workflows directory")
		}
		return path, nil
	}

	return "", flowerrors.NewWorkflowError("locate", "Alfred workflows directory not found")
}

// Link symlinks a workflow directory into Alfred's workflows directory
// under bundleID, replacing an existing symlink. Returns the created
// symlink path.
func Link(workflowDir, bundleID string) (string, error) {
	workflows, err := WorkflowsDir()
	if err != nil {
		return "", err
	}
	dest := filepath.Join(workflows, bundleID)

	if info, err := os.Lstat(dest); err == nil {
		if info.Mode()&os.ModeSymlink == 0 {
			return "", flowerrors.NewWorkflowError("link", "destination exists and is not a symlink: "+dest)
		}
		if err := os.Remove(dest); err != nil {
			return "", flowerrors.NewWorkflowErrorWithCause("link", "failed to remove existing symlink", err)
		}
	}

	if err := os.Symlink(workflowDir, dest); err != nil {
		return "", flowerrors.NewWorkflowErrorWithCause("link", "failed to create symlink", err)
	}
	return dest, nil
}

// Unlink removes the workflow symlink for bundleID. A missing or
// non-symlink destination is left alone.
func Unlink(bundleID string) error {
	workflows, err := WorkflowsDir()
	if err != nil {
		return err
	}
	dest := filepath.Join(workflows, bundleID)

	info, err := os.Lstat(dest)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return nil
	}
	if err := os.Remove(dest); err != nil {
		return flowerrors.NewWorkflowErrorWithCause("unlink", "failed to remove symlink", err)
	}
	return nil
}

// Reload tells Alfred to reload a workflow in place, refreshing the
// canvas without a restart.
func Reload(bundleID string) error {
	script := `tell application "Alfred" to reload workflow "` + bundleID + `"`
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return flowerrors.NewWorkflowErrorWithCause("reload", "failed to reload workflow", err)
	}
	return nil
}

// Pack zips workflowDir into a .alfredworkflow file at outputPath.
func Pack(workflowDir, outputPath string) error {
	abs, err := filepath.Abs(outputPath)
	if err != nil {
		return flowerrors.NewWorkflowErrorWithCause("pack", "failed to resolve output path", err)
	}

	cmd := exec.Command("zip", "-r", abs, ".")
	cmd.Dir = workflowDir
	if out, err := cmd.CombinedOutput(); err != nil {
		return flowerrors.NewWorkflowErrorWithCause("pack", strings.TrimSpace(string(out)), err)
	}
	return nil
}

// Install opens a .alfredworkflow file so Alfred imports it.
func Install(workflowFile string) error {
	if err := exec.Command("open", workflowFile).Run(); err != nil {
		return flowerrors.NewWorkflowErrorWithCause("install", "failed to open workflow file", err)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
