package request_models

type GenerateJournalRequest struct {
	Seed string `json:"seed" binding:"required"`
}

type AnswerQuestionRequest struct {
	Answer string `json:"answer"`
}
