package dockweave_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/dockweave"
	"github.com/aretw0/dockweave/pkg/domain"
	"github.com/aretw0/dockweave/pkg/ports"
)

func writeSpec(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name+".dockspec"), []byte(content), 0644)
	require.NoError(t, err)
}

func noCredentials(t *testing.T) ports.Prompter {
	t.Helper()
	return ports.PrompterFunc(func(ctx context.Context, key string) ([]byte, error) {
		return nil, &domain.CredentialUnavailableError{Key: key, Reason: "standard input is not a terminal"}
	})
}

func TestBuild_WritesComposedArtifact(t *testing.T) {
	specs := t.TempDir()
	out := filepath.Join(t.TempDir(), "Dockerfile")
	writeSpec(t, specs, "base_image", "fragments:\n  - FROM ubuntu:24.04\n")
	writeSpec(t, specs, "app", `
includes: [base_image]
fragments:
  - RUN apt-get install -y curl
`)

	eng, err := dockweave.New(dockweave.Config{SearchPath: []string{specs}, Output: out},
		dockweave.WithPrompter(noCredentials(t)))
	require.NoError(t, err)

	res, err := eng.Build(context.Background(), "app")
	require.NoError(t, err)
	assert.Equal(t, out, res.Path)
	assert.False(t, res.Manifest.HasSecrets())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "FROM ubuntu:24.04\nRUN apt-get install -y curl\n", string(data))
}

func TestBuild_FirstSearchPathEntryShadowsLater(t *testing.T) {
	local := t.TempDir()
	shared := t.TempDir()
	out := filepath.Join(t.TempDir(), "Dockerfile")
	writeSpec(t, local, "base_image", "fragments:\n  - FROM ubuntu:24.04\n")
	writeSpec(t, shared, "base_image", "fragments:\n  - FROM debian:12\n")
	writeSpec(t, shared, "qml2_docker", `
includes: [base_image]
fragments:
  - RUN pip install qml2
`)

	eng, err := dockweave.New(dockweave.Config{SearchPath: []string{local, shared}, Output: out},
		dockweave.WithPrompter(noCredentials(t)))
	require.NoError(t, err)

	_, err = eng.Build(context.Background(), "qml2_docker")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "FROM ubuntu:24.04\nRUN pip install qml2\n", string(data),
		"the include must resolve from the earlier search-path entry")
}

func TestBuild_BundledDefaultsResolve(t *testing.T) {
	// qml2_docker ships with the binary; its include chain must resolve
	// without any search-path entry. Secrets come from a stub prompter.
	out := filepath.Join(t.TempDir(), "Dockerfile")
	prompter := ports.PrompterFunc(func(ctx context.Context, key string) ([]byte, error) {
		return []byte("stub-" + key), nil
	})

	eng, err := dockweave.New(dockweave.Config{Output: out},
		dockweave.WithPrompter(prompter),
		dockweave.WithEnvLookup(func(string) (string, bool) { return "", false }))
	require.NoError(t, err)

	res, err := eng.Build(context.Background(), "qml2_docker")
	require.NoError(t, err)
	assert.True(t, res.Manifest.HasSecrets())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "FROM ubuntu:24.04")
	assert.Contains(t, text, "stub-SECRET_GIT_USER:stub-SECRET_GIT_TOKEN@github.com")
	assert.NotContains(t, text, "${")
}

func TestBuild_CycleWritesNoArtifact(t *testing.T) {
	specs := t.TempDir()
	out := filepath.Join(t.TempDir(), "Dockerfile")
	writeSpec(t, specs, "a", "includes: [b]\nfragments:\n  - RUN a\n")
	writeSpec(t, specs, "b", "includes: [a]\nfragments:\n  - RUN b\n")

	eng, err := dockweave.New(dockweave.Config{SearchPath: []string{specs}, Output: out},
		dockweave.WithPrompter(noCredentials(t)))
	require.NoError(t, err)

	_, err = eng.Build(context.Background(), "a")

	var cycle *domain.CycleError
	require.ErrorAs(t, err, &cycle)
	assert.NoFileExists(t, out)
}

func TestBuild_NotFound(t *testing.T) {
	out := filepath.Join(t.TempDir(), "Dockerfile")
	eng, err := dockweave.New(dockweave.Config{SearchPath: []string{t.TempDir()}, Output: out},
		dockweave.WithPrompter(noCredentials(t)))
	require.NoError(t, err)

	_, err = eng.Build(context.Background(), "nonexistent")

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "nonexistent", nf.Name)
	assert.NoFileExists(t, out)
}

func TestBuild_CredentialUnavailableWritesNoArtifact(t *testing.T) {
	specs := t.TempDir()
	out := filepath.Join(t.TempDir(), "Dockerfile")
	writeSpec(t, specs, "private_secret", `
fragments:
  - FROM ubuntu:24.04
  - RUN git clone https://${SECRET_CREDENTIAL_USER}@example.com
`)

	eng, err := dockweave.New(dockweave.Config{SearchPath: []string{specs}, Output: out},
		dockweave.WithPrompter(noCredentials(t)))
	require.NoError(t, err)

	_, err = eng.Build(context.Background(), "private_secret")

	var unavailable *domain.CredentialUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "SECRET_CREDENTIAL_USER", unavailable.Key)
	assert.NoFileExists(t, out)
}

func TestBuild_OverwritesPriorArtifact(t *testing.T) {
	specs := t.TempDir()
	out := filepath.Join(t.TempDir(), "Dockerfile")
	writeSpec(t, specs, "base_image", "fragments:\n  - FROM ubuntu:24.04\n")
	require.NoError(t, os.WriteFile(out, []byte("stale contents"), 0644))

	eng, err := dockweave.New(dockweave.Config{SearchPath: []string{specs}, Output: out},
		dockweave.WithPrompter(noCredentials(t)))
	require.NoError(t, err)

	_, err = eng.Build(context.Background(), "base_image")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "FROM ubuntu:24.04\n", string(data))
}

func TestWipe_RemovesArtifactAndZeroesManifest(t *testing.T) {
	specs := t.TempDir()
	out := filepath.Join(t.TempDir(), "Dockerfile")
	writeSpec(t, specs, "private", `
fragments:
  - RUN echo ${SECRET_PASS}
`)
	prompter := ports.PrompterFunc(func(ctx context.Context, key string) ([]byte, error) {
		return []byte("hunter2"), nil
	})

	eng, err := dockweave.New(dockweave.Config{SearchPath: []string{specs}, Output: out},
		dockweave.WithPrompter(prompter))
	require.NoError(t, err)

	res, err := eng.Build(context.Background(), "private")
	require.NoError(t, err)
	require.True(t, res.Manifest.HasSecrets())

	wiped, err := eng.Wipe(res.Manifest)
	require.NoError(t, err)
	assert.False(t, wiped.AlreadyAbsent)
	assert.True(t, wiped.Overwritten)
	assert.NoFileExists(t, out)
	assert.False(t, res.Manifest.HasSecrets(), "wipe must invalidate the manifest")

	// Idempotent: a second wipe reports "already absent", no error.
	again, err := eng.Wipe(nil)
	require.NoError(t, err)
	assert.True(t, again.AlreadyAbsent)
}

func TestWipe_WorksWithoutManifest(t *testing.T) {
	out := filepath.Join(t.TempDir(), "Dockerfile")
	require.NoError(t, os.WriteFile(out, []byte("FROM ubuntu:24.04\n"), 0644))

	result, err := dockweave.Wipe(out, nil)
	require.NoError(t, err)
	assert.False(t, result.AlreadyAbsent)
	assert.NoFileExists(t, out)
}

func TestBuild_SetValuesBeatEnvironment(t *testing.T) {
	specs := t.TempDir()
	out := filepath.Join(t.TempDir(), "Dockerfile")
	writeSpec(t, specs, "tagged", "fragments:\n  - FROM ${BASE_TAG}\n")

	eng, err := dockweave.New(
		dockweave.Config{
			SearchPath: []string{specs},
			Output:     out,
			Values:     map[string]string{"BASE_TAG": "alpine:3.20"},
		},
		dockweave.WithPrompter(noCredentials(t)),
		dockweave.WithEnvLookup(func(key string) (string, bool) {
			if key == "BASE_TAG" {
				return "ubuntu:24.04", true
			}
			return "", false
		}),
	)
	require.NoError(t, err)

	_, err = eng.Build(context.Background(), "tagged")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "FROM alpine:3.20\n", string(data))
}
