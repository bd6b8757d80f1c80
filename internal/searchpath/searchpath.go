// Package searchpath resolves the ordered list of directories searched
// for Dockerfile specifications.
//
// Precedence is fixed: entries of the DOCKWEAVE_PATH environment value
// (colon-separated, left to right), then the working directory. The
// store appends the embedded default specifications as a final root, so
// anything on the path shadows a bundled specification of the same name.
package searchpath

import "strings"

// EnvVar names the environment setting holding the colon-separated
// specification search path. It is read once into the engine's Config,
// never re-read during composition.
const EnvVar = "DOCKWEAVE_PATH"

// Resolve builds the ordered, de-duplicated directory list from the raw
// environment value and the working directory. It is a pure function:
// directories are not checked for existence here, unreadable or missing
// entries are simply skipped during lookup.
func Resolve(env string, cwd string) []string {
	out := make([]string, 0, 4)
	seen := make(map[string]bool)
	add := func(dir string) {
		if dir == "" || seen[dir] {
			return
		}
		seen[dir] = true
		out = append(out, dir)
	}
	for _, dir := range strings.Split(env, ":") {
		add(dir)
	}
	add(cwd)
	return out
}
