package dockweave

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/dockweave/internal/composer"
	"github.com/aretw0/dockweave/internal/injector"
	"github.com/aretw0/dockweave/internal/logging"
	"github.com/aretw0/dockweave/internal/searchpath"
	"github.com/aretw0/dockweave/pkg/adapters/fsstore"
	"github.com/aretw0/dockweave/pkg/adapters/terminal"
	"github.com/aretw0/dockweave/pkg/domain"
	"github.com/aretw0/dockweave/pkg/ports"
)

// DefaultArtifact is the artifact file name written into the working
// directory when no output path is configured.
const DefaultArtifact = "Dockerfile"

// Config carries the engine's explicit configuration. It is populated
// once (DefaultConfig reads the environment a single time) and passed
// through; nothing is re-read during composition.
type Config struct {
	// SearchPath is the ordered list of directories searched for
	// specifications. The embedded defaults are always appended as a
	// final root.
	SearchPath []string

	// Output is the artifact path. Empty means "Dockerfile" in the
	// working directory.
	Output string

	// Values supplies plain placeholder substitutions with the highest
	// precedence (above environment and specification defaults).
	Values map[string]string
}

// DefaultConfig resolves the search path from DOCKWEAVE_PATH and the
// working directory.
func DefaultConfig() (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}
	return Config{
		SearchPath: searchpath.Resolve(os.Getenv(searchpath.EnvVar), cwd),
		Output:     DefaultArtifact,
	}, nil
}

// Engine is the high-level entry point for the dockweave library. It
// sequences resolution, composition, credential injection, and the
// artifact write. Each Build call works from a fresh store view;
// nothing is cached between runs.
type Engine struct {
	cfg       Config
	store     ports.Store
	prompter  ports.Prompter
	logger    *slog.Logger
	envLookup composer.EnvLookup
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. Secrets are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithStore overrides the specification store (e.g. a memory store in
// tests or embedded use).
func WithStore(store ports.Store) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithPrompter overrides the credential prompter.
func WithPrompter(prompter ports.Prompter) Option {
	return func(e *Engine) {
		e.prompter = prompter
	}
}

// WithEnvLookup overrides the environment lookup used for plain
// placeholders. Defaults to os.LookupEnv.
func WithEnvLookup(lookup composer.EnvLookup) Option {
	return func(e *Engine) {
		e.envLookup = lookup
	}
}

// New creates an Engine from cfg. By default it searches the
// configured directories plus the embedded default specifications, and
// prompts on the controlling terminal.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if cfg.Output == "" {
		cfg.Output = DefaultArtifact
	}
	e := &Engine{
		cfg:       cfg,
		logger:    logging.NewNop(),
		envLookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		bundled, err := fs.Sub(bundledFS, "specs")
		if err != nil {
			return nil, err
		}
		e.store = fsstore.New(cfg.SearchPath, fsstore.WithBundled(bundled))
	}
	if e.prompter == nil {
		e.prompter = terminal.NewPrompter(os.Stdin, os.Stderr)
	}
	return e, nil
}

// Store exposes the specification store for introspection commands.
func (e *Engine) Store() ports.Store {
	return e.store
}

// BuildResult is what a successful Build hands back: the artifact path
// and the in-memory secret manifest for a later precise wipe.
type BuildResult struct {
	Spec     string
	Path     string
	Manifest *domain.Manifest
}

// Build resolves, composes, injects, and writes the Dockerfile for the
// named specification. Any failure aborts before the write; a half
// written artifact is never left behind. A prior artifact at the
// output path is overwritten.
func (e *Engine) Build(ctx context.Context, name string) (*BuildResult, error) {
	spec, err := e.store.Find(name)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("specification resolved", "spec", name, "location", spec.Location)

	comp, err := composer.Compose(spec, e.store, e.cfg.Values, e.envLookup)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("composition complete", "spec", name, "pending_secrets", len(comp.Pending))

	text, manifest, err := injector.Inject(ctx, comp, e.prompter)
	if err != nil {
		return nil, err
	}

	if err := writeArtifact(e.cfg.Output, text); err != nil {
		manifest.Zero()
		return nil, &domain.WriteError{Path: e.cfg.Output, Err: err}
	}
	e.logger.Info("artifact written", "spec", name, "path", e.cfg.Output, "secrets", manifest.HasSecrets())

	return &BuildResult{Spec: name, Path: e.cfg.Output, Manifest: manifest}, nil
}

// writeArtifact writes atomically: temp file in the target directory,
// then rename. The restrictive mode is deliberate, the artifact may
// carry credentials.
func writeArtifact(path string, text string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".dockweave-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
