package dockweave

import (
	"os"

	"github.com/aretw0/dockweave/pkg/domain"
)

// WipeResult reports the outcome of a wipe.
type WipeResult struct {
	Path string

	// AlreadyAbsent is set when there was nothing to remove. Wipe is
	// idempotent; this is not an error.
	AlreadyAbsent bool

	// Overwritten is set when the artifact's bytes were cleared before
	// removal. A false value with a successful removal means the bytes
	// may survive in freed filesystem blocks.
	Overwritten bool
}

// Wipe removes the artifact at path and invalidates the secret
// manifest. The file's bytes are overwritten with zeros before
// removal, mirroring the behaviour of wipe(1) without shelling out.
// The manifest (when given) is zeroed on every path, success or
// failure. Wipe touches only the one path it is given.
func Wipe(path string, manifest *domain.Manifest) (*WipeResult, error) {
	defer manifest.Zero()

	result := &WipeResult{Path: path}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.AlreadyAbsent = true
		return result, nil
	}
	if err != nil {
		return nil, &domain.WipeError{Path: path, Err: err}
	}

	// Best-effort shred. A failure here is not fatal as long as the
	// removal itself succeeds, but it is reported via Overwritten.
	result.Overwritten = overwrite(path, info.Size()) == nil

	if err := os.Remove(path); err != nil {
		return nil, &domain.WipeError{Path: path, Err: err}
	}
	return result, nil
}

// Wipe removes the engine's configured artifact.
func (e *Engine) Wipe(manifest *domain.Manifest) (*WipeResult, error) {
	result, err := Wipe(e.cfg.Output, manifest)
	if err != nil {
		return nil, err
	}
	if result.AlreadyAbsent {
		e.logger.Info("artifact already absent", "path", e.cfg.Output)
	} else {
		e.logger.Info("artifact wiped", "path", e.cfg.Output, "overwritten", result.Overwritten)
	}
	return result, nil
}

func overwrite(path string, size int64) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	zeros := make([]byte, 32*1024)
	remaining := size
	for remaining > 0 {
		chunk := int64(len(zeros))
		if remaining < chunk {
			chunk = remaining
		}
		n, err := f.Write(zeros[:chunk])
		if err != nil {
			return err
		}
		remaining -= int64(n)
	}
	return f.Sync()
}
