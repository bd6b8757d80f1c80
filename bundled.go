package dockweave

import "embed"

// bundledFS carries the default specifications shipped with the
// binary. They form the final search-path root, so any specification
// of the same name found on DOCKWEAVE_PATH or in the working directory
// shadows its bundled counterpart.
//
//go:embed specs/*.dockspec
var bundledFS embed.FS
