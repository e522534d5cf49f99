package library_fx

import (
	"go.uber.org/fx"

	"haven/internal/api/controllers"
	"haven/internal/services"
)

var Module = fx.Provide(provideLibraryService, provideLibraryController)

func provideLibraryService() services.LibraryServiceInterface {
	return services.NewLibraryService()
}

func provideLibraryController(libraryService services.LibraryServiceInterface) *controllers.LibraryController {
	return controllers.NewLibraryController(libraryService)
}
