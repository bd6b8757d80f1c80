// Package composer merges a specification and its transitive includes
// into a single ordered Dockerfile text.
//
// Includes are traversed depth-first with three-color cycle detection.
// Emission is post-order: an include's fragments are fully emitted
// before the fragments of the specification that includes it, so a
// specification's instructions may rely on its dependencies' layers. A
// specification reachable via several include paths is emitted exactly
// once, at its first post-order completion.
package composer

import (
	"strings"

	"github.com/aretw0/dockweave/pkg/domain"
	"github.com/aretw0/dockweave/pkg/ports"
)

// EnvLookup resolves a plain placeholder key from process
// configuration. It matches the signature of os.LookupEnv so the real
// environment can be injected directly.
type EnvLookup func(key string) (string, bool)

type color int

const (
	unvisited color = iota
	inProgress
	done
)

type traversal struct {
	store ports.Store
	state map[string]color
	stack []string
	order []*domain.Specification
}

// Compose merges root and its transitive includes. Plain placeholders
// are substituted from, in decreasing precedence: overrides, env, then
// the merged specification values (a specification's own values win
// over those of its includes). Secret placeholders are left untouched
// and recorded into the composition's pending set.
func Compose(root *domain.Specification, store ports.Store, overrides map[string]string, env EnvLookup) (*domain.Composition, error) {
	t := &traversal{
		store: store,
		state: make(map[string]color),
	}
	if err := t.visit(root); err != nil {
		return nil, err
	}

	// Merge default values in post-order: later specifications (the
	// includers, ending with root) override their dependencies.
	defaults := make(map[string]string)
	for _, spec := range t.order {
		for key, value := range spec.Values {
			defaults[key] = value
		}
	}

	resolve := func(key string) (string, bool) {
		if value, ok := overrides[key]; ok {
			return value, true
		}
		if env != nil {
			if value, ok := env(key); ok {
				return value, true
			}
		}
		value, ok := defaults[key]
		return value, ok
	}

	var b strings.Builder
	var pending []string
	pendingSeen := make(map[string]bool)
	for _, spec := range t.order {
		for _, frag := range spec.Fragments {
			line, err := substitute(spec.Name, frag, resolve)
			if err != nil {
				return nil, err
			}
			b.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				b.WriteByte('\n')
			}
			for _, key := range domain.ScanPlaceholders(line) {
				if domain.IsSecret(key) && !pendingSeen[key] {
					pendingSeen[key] = true
					pending = append(pending, key)
				}
			}
		}
	}

	return &domain.Composition{
		Root:    root.Name,
		Text:    b.String(),
		Pending: pending,
	}, nil
}

// visit performs the depth-first traversal, coloring nodes to detect
// cycles and appending completed specifications in post-order.
func (t *traversal) visit(spec *domain.Specification) error {
	t.state[spec.Name] = inProgress
	t.stack = append(t.stack, spec.Name)

	for _, name := range spec.Includes {
		switch t.state[name] {
		case done:
			continue
		case inProgress:
			return &domain.CycleError{Cycle: cycleFrom(t.stack, name)}
		}
		included, err := t.store.Find(name)
		if err != nil {
			return err
		}
		if err := t.visit(included); err != nil {
			return err
		}
	}

	t.stack = t.stack[:len(t.stack)-1]
	t.state[spec.Name] = done
	t.order = append(t.order, spec)
	return nil
}

// cycleFrom extracts the offending path from the traversal stack: the
// segment starting at the revisited name, closed by naming it again.
func cycleFrom(stack []string, repeated string) []string {
	for i, name := range stack {
		if name == repeated {
			cycle := make([]string, 0, len(stack)-i+1)
			cycle = append(cycle, stack[i:]...)
			return append(cycle, repeated)
		}
	}
	// Unreachable: the repeated name is in-progress, so it is on the stack.
	return []string{repeated, repeated}
}

// substitute replaces every plain placeholder in frag. Secret markers
// pass through untouched; an unvalued plain key fails, attributed to
// the owning specification.
func substitute(specName, frag string, resolve func(string) (string, bool)) (string, error) {
	matches := domain.PlaceholderMatches(frag)
	if len(matches) == 0 {
		return frag, nil
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		if domain.IsSecret(m.Key) {
			continue
		}
		value, ok := resolve(m.Key)
		if !ok {
			return "", &domain.UnresolvedPlaceholderError{Spec: specName, Key: m.Key}
		}
		b.WriteString(frag[last:m.Start])
		b.WriteString(value)
		last = m.End
	}
	b.WriteString(frag[last:])
	return b.String(), nil
}
