package activity_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"haven/internal/api/controllers"
	"haven/internal/repositories"
	"haven/internal/services"
)

var Module = fx.Provide(provideActivityRepo, provideActivityService, provideActivityController)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(
	activityRepo repositories.ActivityRepository,
	accountRepo repositories.AccountRepository,
) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, accountRepo)
}

func provideActivityController(activityService services.ActivityServiceInterface) *controllers.ActivityController {
	return controllers.NewActivityController(activityService)
}
