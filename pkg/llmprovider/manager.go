package llmprovider

import (
	"context"
	"fmt"

	"dayflow/pkg/log"
)

// Manager tries providers in priority order. There is no per-provider retry:
// a failed call falls through to the next provider and the last error wins.
type Manager struct {
	providers []Provider
	fallback  bool
	logger    log.Logger
}

// NewManager creates a new provider Manager. Providers must already be sorted
// by priority; fallback controls whether lower-priority providers are tried.
func NewManager(providers []Provider, fallback bool, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		fallback:  fallback,
		logger:    logger,
	}
}

// Generate iterates through providers in priority order.
func (m *Manager) Generate(ctx context.Context, req *Request) (string, error) {
	if len(m.providers) == 0 {
		return "", ErrNoProvidersConfigured
	}

	var lastErr error
	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		text, err := provider.Generate(ctx, req)
		if err == nil {
			m.logger.Infof(ctx, "llm generation ok: provider=%s model=%s", provider.Name(), provider.Model())
			return text, nil
		}

		m.logger.Warnf(ctx, "llm generation failed: provider=%s: %v", provider.Name(), err)
		lastErr = err

		if !m.fallback {
			break
		}
	}

	return "", fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}
