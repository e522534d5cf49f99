package response_models

type ProfileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// Feature flags: has the user ever created anything in each area.
	Journal  bool `json:"journal"`
	Therapy  bool `json:"therapy"`
	Quiz     bool `json:"quiz"`
	Activity bool `json:"activity"`
}
