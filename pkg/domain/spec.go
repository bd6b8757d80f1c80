package domain

import "regexp"

// SecretPrefix marks placeholder keys whose values are credentials.
// A key like SECRET_GIT_TOKEN is resolved by prompting; anything else
// is resolved from configuration or the specification's own values.
const SecretPrefix = "SECRET_"

// placeholderRe recognizes ${KEY} markers in fragment text.
var placeholderRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Specification is a named, located bundle of Dockerfile fragments.
// It is immutable after loading; a fresh copy is loaded per build.
type Specification struct {
	// Name is the lookup identifier (the file name without extension).
	Name string

	// Location is the search-path root the specification was found in.
	Location string

	// Description is optional markdown shown by introspection commands.
	Description string

	// Includes names other specifications composed before this one's
	// own fragments, in declaration order.
	Includes []string

	// Values holds default substitutions for plain placeholders.
	Values map[string]string

	// Fragments are ordered Dockerfile instruction blocks, possibly
	// containing ${KEY} placeholders.
	Fragments []string
}

// IsSecret reports whether a placeholder key requires credential
// injection rather than configuration lookup.
func IsSecret(key string) bool {
	return len(key) > len(SecretPrefix) && key[:len(SecretPrefix)] == SecretPrefix
}

// Match locates one placeholder occurrence inside a block of text.
type Match struct {
	Key   string
	Start int // byte offset of the '$'
	End   int // byte offset past the closing '}'
}

// PlaceholderMatches returns every placeholder occurrence in text, in
// order of appearance.
func PlaceholderMatches(text string) []Match {
	idx := placeholderRe.FindAllStringSubmatchIndex(text, -1)
	matches := make([]Match, 0, len(idx))
	for _, m := range idx {
		matches = append(matches, Match{
			Key:   text[m[2]:m[3]],
			Start: m[0],
			End:   m[1],
		})
	}
	return matches
}

// ScanPlaceholders returns the distinct placeholder keys in text, in
// order of first appearance.
func ScanPlaceholders(text string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, m := range PlaceholderMatches(text) {
		if !seen[m.Key] {
			seen[m.Key] = true
			keys = append(keys, m.Key)
		}
	}
	return keys
}

// Placeholders returns the distinct placeholder keys across the
// specification's fragments, in order of first appearance.
func (s *Specification) Placeholders() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, frag := range s.Fragments {
		for _, key := range ScanPlaceholders(frag) {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	return keys
}

// SecretPlaceholders returns the subset of Placeholders that carry the
// secret prefix.
func (s *Specification) SecretPlaceholders() []string {
	var keys []string
	for _, key := range s.Placeholders() {
		if IsSecret(key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// SpecInfo is a lightweight listing entry: a specification name and
// the search-path root that wins its lookup.
type SpecInfo struct {
	Name     string
	Location string
}
