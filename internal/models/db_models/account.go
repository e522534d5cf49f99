package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string

	// First-entry flags, one per feature area. Flipped the first time
	// the user creates something in that area; the journal list screen
	// checks Journal before issuing a list call at all.
	Journal  bool `gorm:"default:false"`
	Therapy  bool `gorm:"default:false"`
	Quiz     bool `gorm:"default:false"`
	Activity bool `gorm:"default:false"`

	Entries   []JournalEntry `gorm:"foreignKey:UserID"`
	DailyLogs []DailyLog     `gorm:"foreignKey:UserID"`
}
