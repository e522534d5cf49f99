package controllers

import (
	"github.com/gin-gonic/gin"

	"haven/internal/services"
	"haven/pkg/utils"
)

type LibraryController struct {
	libraryService services.LibraryServiceInterface
}

func NewLibraryController(libraryService services.LibraryServiceInterface) *LibraryController {
	return &LibraryController{
		libraryService: libraryService,
	}
}

// ListResources godoc
// @Summary List wellness library resources
// @Description Static catalog of articles, videos, books and podcasts; optional title search
// @Tags Library
// @Produce json
// @Param q query string false "Title search"
// @Success 200 {array} response_models.LibraryResource
// @Router /library/resources [get]
func (l *LibraryController) ListResources(c *gin.Context) {
	resources := l.libraryService.ListResources(c.Query("q"))
	utils.RespondSuccess(c, resources, "Library resources fetched successfully")
}
