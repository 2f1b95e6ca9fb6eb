package config

// Configfile represents the structure of the domx.yaml configuration file.
type Configfile struct {
	Version         string              `yaml:"version"`
	Root            string              `yaml:"root"`
	EntryPoints     []string            `yaml:"entryPoints"`
	Outdir          string              `yaml:"outdir"`
	Extensions      []string            `yaml:"extensions"`
	Cache           CacheDTO            `yaml:"cache"`
	CompilerOptions *CompilerOptionsDTO `yaml:"compilerOptions"`
	Transformer     TransformerDTO      `yaml:"transformer"`
	Serve           ServeDTO            `yaml:"serve"`
	Watch           WatchDTO            `yaml:"watch"`
}

// CacheDTO configures resource reuse. A missing enabled key keeps the mode default.
type CacheDTO struct {
	Enabled *bool  `yaml:"enabled"`
	Program string `yaml:"program"`
}

// CompilerOptionsDTO configures program construction. Missing keys keep their defaults.
type CompilerOptionsDTO struct {
	Target string `yaml:"target"`
	Module string `yaml:"module"`
	JSX    string `yaml:"jsx"`
	Strict *bool  `yaml:"strict"`
}

// TransformerDTO configures the JSX runtime.
type TransformerDTO struct {
	ImportSource string `yaml:"importSource"`
	Verify       bool   `yaml:"verify"`
}

// ServeDTO configures the development server.
type ServeDTO struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	Servedir    string `yaml:"servedir"`
	MetricsPort int    `yaml:"metricsPort"`
}

// WatchDTO configures file watching.
type WatchDTO struct {
	Debounce string `yaml:"debounce"`
}
