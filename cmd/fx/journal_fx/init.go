package journal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"haven/internal/api/controllers"
	"haven/internal/repositories"
	"haven/internal/services"
)

var Module = fx.Provide(provideJournalRepo, provideJournalService, provideJournalController)

func provideJournalRepo(db *gorm.DB) repositories.JournalRepository {
	return repositories.NewJournalRepository(db)
}

func provideJournalService(
	journalRepo repositories.JournalRepository,
	accountRepo repositories.AccountRepository,
) services.JournalServiceInterface {
	return services.NewJournalService(journalRepo, accountRepo)
}

func provideJournalController(journalService services.JournalServiceInterface) *controllers.JournalController {
	return controllers.NewJournalController(journalService)
}
