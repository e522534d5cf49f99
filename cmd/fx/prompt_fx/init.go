package prompt_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"haven/internal/api/controllers"
	"haven/internal/services"
	mem "haven/pkg/memcache"
	"haven/pkg/utils"
)

var Module = fx.Provide(provideQuestionClient, provideSessionStore, providePromptService, providePromptController)

// OpenAI is the primary question generator; the Gemini free tier is the
// fallback when no OpenAI key is configured.
func provideQuestionClient() utils.QuestionClientInterface {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return utils.NewOpenAIQuestionClient(key, os.Getenv("OPENAI_MODEL"))
	}

	client, err := utils.NewGeminiQuestionClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("no usable AI question client: %v", err)
	}
	return client
}

func provideSessionStore() mem.SessionStore {
	return mem.NewGuidedSessions()
}

func providePromptService(
	aiClient utils.QuestionClientInterface,
	sessions mem.SessionStore,
	journalService services.JournalServiceInterface,
) services.PromptServiceInterface {
	return services.NewPromptService(aiClient, sessions, journalService)
}

func providePromptController(promptService services.PromptServiceInterface) *controllers.PromptController {
	return controllers.NewPromptController(promptService)
}
