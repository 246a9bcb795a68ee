package llm

import "context"

// UsageFunc receives the provider name and response of every successful completion.
type UsageFunc func(provider string, resp *CompletionResponse)

type meteredProvider struct {
	Provider
	onUsage UsageFunc
}

// WithUsage wraps provider so that onUsage observes every successful response.
func WithUsage(provider Provider, onUsage UsageFunc) Provider {
	if onUsage == nil {
		return provider
	}
	return &meteredProvider{Provider: provider, onUsage: onUsage}
}

func (m *meteredProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	resp, err := m.Provider.Complete(ctx, req)
	if err != nil {
		return nil, err
	}
	m.onUsage(m.Provider.Name(), resp)
	return resp, nil
}
