package response_models

// LibraryResource is one item in the static wellness resource catalog.
type LibraryResource struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Kind     string `json:"kind"` // article | video | book | podcast
	Category string `json:"category"`
	Duration string `json:"duration,omitempty"`
	Author   string `json:"author,omitempty"`
}
