package response_models

import (
	"time"

	"haven/internal/models/db_models"
	"haven/pkg/utils"
)

// JournalEntryResponse mirrors the mobile wire shape: content is either
// a plain string or an ordered question/answer array depending on the
// entry type.
type JournalEntryResponse struct {
	ID          string      `json:"id"`
	Date        time.Time   `json:"date"`
	DisplayDate string      `json:"displayDate"`
	Type        string      `json:"type"`
	Template    string      `json:"template"`
	TemplateID  int         `json:"templateId"`
	Question    string      `json:"question,omitempty"`
	Content     interface{} `json:"content"`
}

func ToJournalEntryResponse(e *db_models.JournalEntry, now time.Time) JournalEntryResponse {
	resp := JournalEntryResponse{
		ID:          e.ID.String(),
		Date:        e.EntryDate,
		DisplayDate: utils.FormatEntryDate(e.EntryDate, now),
		Type:        e.Type,
		Template:    e.Template,
		TemplateID:  e.TemplateID,
		Question:    e.Question,
	}
	if e.Structured() {
		answers := e.Answers
		if answers == nil {
			answers = db_models.QAList{}
		}
		resp.Content = answers
	} else {
		resp.Content = e.Body
	}
	return resp
}

func ToJournalEntryResponses(entries []db_models.JournalEntry, now time.Time) []JournalEntryResponse {
	out := make([]JournalEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, ToJournalEntryResponse(&entries[i], now))
	}
	return out
}

type GuidedSessionResponse struct {
	SessionID string   `json:"sessionId"`
	Seed      string   `json:"seed"`
	Questions []string `json:"questions"`
	Index     int      `json:"index"`
	Done      bool     `json:"done"`
}
