package domain

// Composition is the merged, include-ordered Dockerfile text with all
// plain placeholders substituted. Secret placeholders are still
// present as markers; Pending lists their keys.
type Composition struct {
	// Root is the name of the specification the composition started from.
	Root string

	// Text is the merged instruction text. Each fragment ends with a
	// newline; secret markers are untouched.
	Text string

	// Pending holds the distinct secret keys awaiting injection, in
	// order of first appearance in Text.
	Pending []string
}

// SecretRange locates one substituted secret value in the final
// artifact text. Offsets are byte-based; Line is 1-based.
type SecretRange struct {
	Key    string
	Offset int
	Length int
	Line   int
}

// Manifest records where credential values were substituted into the
// artifact. It retains the value bytes only so Zero can clear them;
// the values are never exposed or persisted.
type Manifest struct {
	Ranges []SecretRange

	retained [][]byte
}

// Retain registers a secret value for clearing. The manifest takes
// ownership of the slice.
func (m *Manifest) Retain(value []byte) {
	m.retained = append(m.retained, value)
}

// HasSecrets reports whether any credential material was substituted.
func (m *Manifest) HasSecrets() bool {
	return m != nil && len(m.Ranges) > 0
}

// Keys returns the distinct secret keys in the manifest, in
// substitution order.
func (m *Manifest) Keys() []string {
	if m == nil {
		return nil
	}
	var keys []string
	seen := make(map[string]bool)
	for _, r := range m.Ranges {
		if !seen[r.Key] {
			seen[r.Key] = true
			keys = append(keys, r.Key)
		}
	}
	return keys
}

// Zero overwrites every retained secret value and drops the range
// records. Safe to call more than once and on a nil manifest.
func (m *Manifest) Zero() {
	if m == nil {
		return
	}
	for _, value := range m.retained {
		for i := range value {
			value[i] = 0
		}
	}
	m.retained = nil
	m.Ranges = nil
}
