package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/k5aq/adifcount/pkg/core"
)

// ResolvePath turns the user-supplied log path into a concrete file path.
//
// A leading "~/" expands to the user's home directory (in both userPath and
// homeDir). A relative userPath is joined under homeDir when homeDir is set.
// A path that does not exist as written but contains glob metacharacters
// is expanded and must match exactly one file.
func ResolvePath(userPath, homeDir string) (string, error) {
	if userPath == "" {
		return "", fmt.Errorf("%w: empty path", core.ErrFileNotFound)
	}

	path, err := expandHome(userPath)
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(path) && homeDir != "" {
		base, err := expandHome(homeDir)
		if err != nil {
			return "", err
		}
		path = filepath.Join(base, path)
	}
	path = filepath.Clean(path)

	// Brackets and braces are legal in names: an existing literal path wins.
	if _, err := os.Stat(path); err == nil || !hasMeta(path) {
		return path, nil
	}

	matches, err := doublestar.FilepathGlob(path)
	if err != nil {
		return "", fmt.Errorf("invalid pattern %q: %w", userPath, err)
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no file matches %q", core.ErrFileNotFound, path)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d files", core.ErrAmbiguousPath, path, len(matches))
	}
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}
