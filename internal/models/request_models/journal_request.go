package request_models

// CreateEntryRequest covers the free-write and guided template flows.
// For a guided flow Answers maps prompt index to the user's answer;
// missing indexes become empty answers. Date is optional; empty means
// the moment of submission.
type CreateEntryRequest struct {
	Template string         `json:"template" binding:"required"`
	Date     string         `json:"date"`
	Text     string         `json:"text"`
	Answers  map[int]string `json:"answers"`
}
