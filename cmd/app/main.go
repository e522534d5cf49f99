package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"haven/cmd/fx/account_fx"
	"haven/cmd/fx/activity_fx"
	"haven/cmd/fx/db_fx"
	"haven/cmd/fx/journal_fx"
	"haven/cmd/fx/library_fx"
	"haven/cmd/fx/prompt_fx"
	"haven/internal/api/controllers"
	"haven/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		journal_fx.Module,
		activity_fx.Module,
		prompt_fx.Module,
		library_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	journalController *controllers.JournalController,
	activityController *controllers.ActivityController,
	promptController *controllers.PromptController,
	libraryController *controllers.LibraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, journalController, activityController, promptController, libraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	journalController *controllers.JournalController,
	activityController *controllers.ActivityController,
	promptController *controllers.PromptController,
	libraryController *controllers.LibraryController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.GET("/profile", middleware.JWTAuthMiddleware(), accountController.Profile)

	journal := r.Group("/journal")
	journal.GET("/templates", promptController.ListTemplates)
	journal.GET("/templates/prompts", promptController.TemplatePrompts)

	journalAuth := journal.Group("", middleware.JWTAuthMiddleware())
	journalAuth.GET("/entries", journalController.ListEntries)
	journalAuth.GET("/entries/:entryId", journalController.GetEntry)
	journalAuth.POST("/entries", journalController.CreateEntry)
	journalAuth.DELETE("/entries/:entryId", journalController.DeleteEntry)
	journalAuth.POST("/generate", promptController.GenerateJournal)
	journalAuth.POST("/sessions/:sessionId/answer", promptController.AnswerQuestion)
	journalAuth.POST("/sessions/:sessionId/finish", promptController.FinishSession)

	activity := r.Group("/activity", middleware.JWTAuthMiddleware())
	activity.PUT("/today", activityController.UpsertToday)
	activity.GET("/summary", activityController.Summary)

	library := r.Group("/library")
	library.GET("/resources", libraryController.ListResources)
}
