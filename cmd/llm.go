package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/akarpov/mentora/internal/llm"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM provider configuration",
}

var llmDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose how the LLM provider resolves from the environment",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := llm.ConfigFromEnv()

		switch {
		case os.Getenv("MENTORA_LLM_PROVIDER") != "":
			fmt.Printf("Provider:  %s (from MENTORA_LLM_PROVIDER)\n", cfg.Provider)
		case cfg.Validate() != nil:
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
				fmt.Printf("Provider:  %s (discovered from a bare vendor API key)\n", cfg.Provider)
				break
			}
			fmt.Printf("Provider:  %s (default)\n", cfg.Provider)
		default:
			fmt.Printf("Provider:  %s (default)\n", cfg.Provider)
		}

		model, keySet := providerModelAndKey(cfg)
		fmt.Printf("Model:     %s\n", describeModel(cfg.Provider, model))
		if keySet {
			fmt.Println("API key:   set")
		} else {
			fmt.Println("API key:   missing")
		}
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)
		fmt.Printf("Retries:   %d attempts, %s initial backoff\n",
			cfg.Retry.MaxAttempts, cfg.Retry.InitialWait)

		if err := cfg.Validate(); err != nil {
			fmt.Println("Status:    not configured")
			fmt.Printf("Problem:   %v\n", err)
			fmt.Println()
			fmt.Println("Set MENTORA_LLM_PROVIDER plus the matching MENTORA_*_API_KEY,")
			fmt.Println("or export a bare vendor key (GEMINI_API_KEY, OPENAI_API_KEY,")
			fmt.Println("ANTHROPIC_API_KEY, OPENROUTER_API_KEY).")
			return
		}
		fmt.Println("Status:    ready")
	},
}

var llmModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List friendly model names and the IDs they resolve to",
	Run: func(cmd *cobra.Command, args []string) {
		aliases := llm.ModelAliases()

		providers := make([]string, 0, len(aliases))
		for p := range aliases {
			providers = append(providers, p)
		}
		sort.Strings(providers)

		for _, p := range providers {
			fmt.Println(p)
			names := make([]string, 0, len(aliases[p]))
			for name := range aliases[p] {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %-16s %s\n", name, aliases[p][name])
			}
			fmt.Println()
		}

		fmt.Println("openrouter passes namespaced model IDs through unchanged,")
		fmt.Println("e.g. google/gemini-2.0-flash-exp.")
	},
}

// providerModelAndKey picks the selected provider's model name and
// whether its API key is present.
func providerModelAndKey(cfg llm.Config) (string, bool) {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.Model, cfg.Anthropic.APIKey != ""
	case "openai":
		return cfg.OpenAI.Model, cfg.OpenAI.APIKey != ""
	case "gemini":
		return cfg.Gemini.Model, cfg.Gemini.APIKey != ""
	case "openrouter":
		return cfg.OpenRouter.Model, cfg.OpenRouter.APIKey != ""
	case "mock":
		return "mock", true
	default:
		return "", false
	}
}

// describeModel shows the concrete model ID a friendly name resolves to.
func describeModel(provider, model string) string {
	if id, ok := llm.ModelAliases()[provider][model]; ok && id != model {
		return fmt.Sprintf("%s -> %s", model, id)
	}
	return model
}

func init() {
	llmCmd.AddCommand(llmDoctorCmd)
	llmCmd.AddCommand(llmModelsCmd)
}
