package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/akarpov/mentora/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, events store.LLMEventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, events)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds a provider from MENTORA_ environment
// configuration. When no provider is pinned it falls back to discovering a
// bare vendor key (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY,
// OPENROUTER_API_KEY). A pinned provider with a missing key stays an
// error rather than silently switching vendors.
func NewProviderFromEnv(ctx context.Context, events store.LLMEventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if os.Getenv("MENTORA_LLM_PROVIDER") == "" && cfg.Validate() != nil {
		if discovered, ok := DiscoverConfig(); ok {
			cfg = discovered
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, events)
}

// ModelAliases returns the friendly model names each SDK provider accepts
// and the concrete model IDs they resolve to. OpenRouter is absent because
// it passes namespaced model IDs through untouched.
func ModelAliases() map[string]map[string]string {
	byProvider := map[string]map[string]string{
		"anthropic": anthropicModels,
		"openai":    openaiModels,
		"gemini":    geminiModels,
	}
	out := make(map[string]map[string]string, len(byProvider))
	for provider, models := range byProvider {
		m := make(map[string]string, len(models))
		for name, id := range models {
			m[name] = id
		}
		out[provider] = m
	}
	return out
}
