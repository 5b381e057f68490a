package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/envcheck/pkg"
)

// baseConfig is the base name (sans extension) of the CLI configuration file.
const baseConfig = "config"

// DefaultDirMode is the default file mode for creating directories.
const DefaultDirMode = 0o700

// configPath returns the path to the named configuration file.
func configPath(base string) string {
	return filepath.Join(pkg.ConfigDir(), base)
}

// mkdirAllRequired creates the runtime directories required by the CLI.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
			return pkg.MakeErrorf("create directory %q: %w", dir, err)
		}
	}

	return nil
}
