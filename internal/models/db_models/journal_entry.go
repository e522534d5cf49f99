package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Entry types, one per authoring surface. The unstructured kinds store
// their content as plain text in Body; everything else carries an
// ordered question/answer list in Answers.
const (
	EntryTypeAIPrompt       = "ai"
	EntryTypeBlank          = "blank"
	EntryTypeMorning        = "morning"
	EntryTypeNight          = "night"
	EntryTypeTodo           = "todo"
	EntryTypeVoice          = "voice"
	EntryTypeCamera         = "camera"
	EntryTypeGratitude      = "gratitude"
	EntryTypeMentalHealth   = "mental-health"
	EntryTypeOrganization   = "organization"
	EntryTypeCreative       = "creative"
	EntryTypeRelationships  = "relationships"
	EntryTypePersonalGrowth = "personal-growth"
)

// QAPair is one answered prompt inside a structured entry. ID is the
// position index; Answer may be empty when the user skipped the question.
type QAPair struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QAList is stored as a jsonb column.
type QAList []QAPair

func (l QAList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *QAList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for QAList")
	}
}

// JournalEntry is immutable once created: the app only ever inserts and
// deletes, never updates in place.
type JournalEntry struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;index"`
	EntryDate  time.Time `gorm:"index"`
	Type       string
	Template   string
	TemplateID int
	// Seed prompt for AI-guided entries ("I am stressed..."), empty
	// otherwise.
	Question string
	Body     string
	Answers  QAList `gorm:"type:jsonb"`
}

// Structured reports whether this entry carries a question/answer list
// rather than free text.
func (e *JournalEntry) Structured() bool {
	switch e.Type {
	case EntryTypeBlank, EntryTypeTodo, EntryTypeVoice, EntryTypeCamera:
		return false
	}
	return true
}
