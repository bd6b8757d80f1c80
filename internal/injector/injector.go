// Package injector fills secret placeholders in a composition with
// credential values obtained through a ports.Prompter.
//
// Each distinct secret key is prompted for exactly once; the value
// fills every occurrence. Substitution positions are recorded into a
// manifest so the wipe operation can clear the material later without
// re-parsing the artifact. Values live only in process memory and are
// zeroed on every failure path.
package injector

import (
	"context"
	"errors"
	"strings"

	"github.com/aretw0/dockweave/pkg/domain"
	"github.com/aretw0/dockweave/pkg/ports"
)

// Inject substitutes every pending secret placeholder in comp and
// returns the final artifact text together with the manifest of
// substitution ranges. If any credential cannot be obtained, nothing is
// returned and all values collected so far are zeroed.
func Inject(ctx context.Context, comp *domain.Composition, prompter ports.Prompter) (string, *domain.Manifest, error) {
	manifest := &domain.Manifest{}
	if len(comp.Pending) == 0 {
		return comp.Text, manifest, nil
	}

	values := make(map[string][]byte, len(comp.Pending))
	for _, key := range comp.Pending {
		if err := ctx.Err(); err != nil {
			manifest.Zero()
			zero(values)
			return "", nil, err
		}
		value, err := prompter.Prompt(ctx, key)
		if err != nil {
			manifest.Zero()
			zero(values)
			var unavailable *domain.CredentialUnavailableError
			if errors.As(err, &unavailable) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return "", nil, err
			}
			return "", nil, &domain.CredentialUnavailableError{Key: key, Reason: err.Error()}
		}
		values[key] = value
		manifest.Retain(value)
	}

	var b strings.Builder
	b.Grow(len(comp.Text))
	line := 1
	last := 0
	for _, m := range domain.PlaceholderMatches(comp.Text) {
		value, ok := values[m.Key]
		if !ok {
			// Plain markers were substituted by the composer; anything
			// left that is not pending passes through as-is.
			continue
		}
		gap := comp.Text[last:m.Start]
		line += strings.Count(gap, "\n")
		b.WriteString(gap)
		manifest.Ranges = append(manifest.Ranges, domain.SecretRange{
			Key:    m.Key,
			Offset: b.Len(),
			Length: len(value),
			Line:   line,
		})
		b.Write(value)
		last = m.End
	}
	b.WriteString(comp.Text[last:])

	return b.String(), manifest, nil
}

func zero(values map[string][]byte) {
	for _, value := range values {
		for i := range value {
			value[i] = 0
		}
	}
}
