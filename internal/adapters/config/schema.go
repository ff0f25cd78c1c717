package config

// Workfile is the structure of ship.work.yaml.
type Workfile struct {
	// Packages holds glob patterns, relative to the suite root, matching package directories.
	Packages []string `yaml:"packages"`
	// Vendor namespaces the suite's packages in quoted imports ("vendor/name").
	Vendor string `yaml:"vendor"`
}
