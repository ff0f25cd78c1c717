package domain

import "path/filepath"

const (
	// ShipDirName is the name of the per-suite and per-package metadata directory.
	ShipDirName = ".ship"

	// WorkFileName is the name of the suite configuration file.
	WorkFileName = "ship.work.yaml"

	// ManifestFileName is the name of the native package manifest.
	ManifestFileName = "ship.yaml"

	// PyprojectFileName is the name of the pyproject manifest.
	PyprojectFileName = "pyproject.toml"

	// HCLManifestFileName is the name of the HCL package manifest.
	HCLManifestFileName = "ship.hcl"

	// VersionFileName is the plain-text version file kept next to the manifest.
	VersionFileName = "version.txt"

	// RegistryFileName is the name of the per-package convergence registry.
	RegistryFileName = "registry.yaml"

	// LockFileName is the name of the per-package registry lock.
	LockFileName = "registry.lock"

	// SettingsFileName is the base name of the suite settings file.
	SettingsFileName = "config"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ManifestFileNames lists the supported manifests in lookup order.
var ManifestFileNames = []string{ManifestFileName, PyprojectFileName, HCLManifestFileName}

// DefaultRegistryPath returns the registry location relative to a package directory.
// It joins .ship and registry.yaml.
func DefaultRegistryPath() string {
	return filepath.Join(ShipDirName, RegistryFileName)
}

// DefaultLockPath returns the lock location relative to a package directory.
func DefaultLockPath() string {
	return filepath.Join(ShipDirName, LockFileName)
}
