package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "domx.yaml"

	// OutDirName is the default build output directory.
	OutDirName = "dist"

	// NodeModulesDirName is where JavaScript packages are installed.
	NodeModulesDirName = "node_modules"

	// OutputExt is the extension of transformed files.
	OutputExt = ".js"

	// DefaultImportSource is the JSX runtime package used when none is configured.
	DefaultImportSource = "dom-expressions"

	// DefaultServeHost is the default development server host.
	DefaultServeHost = "127.0.0.1"

	// DefaultServePort is the default development server port.
	DefaultServePort = 5173

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultOutdir returns the default output directory below root.
func DefaultOutdir(root string) string {
	return filepath.Join(root, OutDirName)
}
