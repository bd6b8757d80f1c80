package searchpath_test

import (
	"testing"

	"github.com/aretw0/dockweave/internal/searchpath"
	"github.com/stretchr/testify/assert"
)

func TestResolve_OrderIsEnvThenCwd(t *testing.T) {
	dirs := searchpath.Resolve("/a:/b", "/work")

	assert.Equal(t, []string{"/a", "/b", "/work"}, dirs)
}

func TestResolve_EmptyEnv(t *testing.T) {
	dirs := searchpath.Resolve("", "/work")

	assert.Equal(t, []string{"/work"}, dirs)
}

func TestResolve_DropsEmptyEntries(t *testing.T) {
	dirs := searchpath.Resolve(":/a::", "/work")

	assert.Equal(t, []string{"/a", "/work"}, dirs)
}

func TestResolve_DeduplicatesKeepingFirst(t *testing.T) {
	dirs := searchpath.Resolve("/a:/work:/a", "/work")

	assert.Equal(t, []string{"/a", "/work"}, dirs)
}
