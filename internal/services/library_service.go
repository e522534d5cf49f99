package services

import (
	"strings"

	"haven/internal/models/response_models"
)

type LibraryServiceInterface interface {
	ListResources(query string) []response_models.LibraryResource
}

type LibraryService struct{}

func NewLibraryService() LibraryServiceInterface {
	return &LibraryService{}
}

// The resource library is configuration data, fixed at build time.
var libraryResources = []response_models.LibraryResource{
	{ID: "med-1", Title: "5-Minute Morning Meditation", Kind: "video", Category: "Meditation Guides", Duration: "5 min"},
	{ID: "med-2", Title: "Body Scan for Anxiety Relief", Kind: "video", Category: "Meditation Guides", Duration: "12 min"},
	{ID: "med-3", Title: "Morning Calm Meditation", Kind: "video", Category: "Meditation Guides", Duration: "10 min"},
	{ID: "yoga-1", Title: "Gentle Yoga for Stress Relief", Kind: "video", Category: "Yoga Flows", Duration: "20 min"},
	{ID: "yoga-2", Title: "Yoga for Better Sleep", Kind: "video", Category: "Yoga Flows", Duration: "15 min"},
	{ID: "yoga-3", Title: "Yoga for Anxiety Relief", Kind: "video", Category: "Yoga Flows", Duration: "18 min"},
	{ID: "topic-1", Title: "Understanding CPTSD", Kind: "article", Category: "Mental Health Topics"},
	{ID: "topic-2", Title: "ADHD Focus Techniques", Kind: "article", Category: "Mental Health Topics"},
	{ID: "topic-3", Title: "Healing After a Breakup", Kind: "article", Category: "Mental Health Topics"},
	{ID: "topic-4", Title: "Understanding Trauma Responses", Kind: "article", Category: "Mental Health Topics"},
	{ID: "book-1", Title: "The Body Keeps the Score", Kind: "book", Category: "Books", Author: "Bessel van der Kolk"},
	{ID: "book-2", Title: "Driven to Distraction", Kind: "book", Category: "Books", Author: "Edward M. Hallowell"},
	{ID: "book-3", Title: "The Happiness Trap", Kind: "book", Category: "Books", Author: "Russ Harris"},
	{ID: "pod-1", Title: "The Mental Illness Happy Hour", Kind: "podcast", Category: "Podcasts"},
	{ID: "pod-2", Title: "Small Wins, Big Shifts: The Science of Tiny Habits podcast", Kind: "podcast", Category: "Podcasts"},
}

// ListResources filters the catalog by a case-insensitive title match.
// An empty query returns everything.
func (l *LibraryService) ListResources(query string) []response_models.LibraryResource {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]response_models.LibraryResource, len(libraryResources))
		copy(out, libraryResources)
		return out
	}

	var out []response_models.LibraryResource
	for _, r := range libraryResources {
		if strings.Contains(strings.ToLower(r.Title), query) {
			out = append(out, r)
		}
	}
	return out
}
