package ports

import "context"

// Prompter obtains a credential value for a secret placeholder key.
// The returned bytes are owned by the caller, which is responsible for
// zeroing them; implementations must not retain or log them.
type Prompter interface {
	// Prompt asks for the value of one secret key. It returns
	// *domain.CredentialUnavailableError when no value can be obtained
	// (non-interactive input, closed terminal, empty entry).
	Prompt(ctx context.Context, key string) ([]byte, error)
}

// PrompterFunc adapts a plain function to the Prompter interface.
type PrompterFunc func(ctx context.Context, key string) ([]byte, error)

// Prompt implements Prompter.
func (f PrompterFunc) Prompt(ctx context.Context, key string) ([]byte, error) {
	return f(ctx, key)
}
