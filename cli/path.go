package cli

import (
	"os"
	"path/filepath"

	"github.com/zflat/launch/pkg"
)

// baseConfig is the base name of the configuration file and its top-level
// YAML key.
const baseConfig = "config"

// configExt is the extension of the YAML configuration file.
const configExt = ".yaml"

// defaultDirMode is the permission mode for created runtime directories.
const defaultDirMode os.FileMode = 0o700

// configFile returns the absolute path to the YAML configuration file.
func configFile() string {
	return filepath.Join(pkg.ConfigDir(), baseConfig+configExt)
}

// mkdirAllRequired creates all required runtime directories.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
