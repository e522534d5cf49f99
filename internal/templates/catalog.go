// Package templates is the static journal template catalog: a pure
// lookup from a template's display label to its stored identity and its
// ordered prompt list. Labels may be renamed between releases; the
// small-integer TemplateID is what persisted entries reference.
package templates

import (
	"haven/internal/models/db_models"
)

type TemplateInfo struct {
	Type       string
	Template   string
	TemplateID int
}

// Template display labels. The first block mirrors the base authoring
// surfaces; the rest are the "More Templates" catalog grouped by
// category on the new-entry screen.
const (
	AIPrompt       = "AI Guided Journal"
	FreeWriting    = "Free Writing"
	Morning        = "Morning Intentions"
	Night          = "Night Reflections"
	Todo           = "Todo Journal"
	Voice          = "Voice Journal"
	Written        = "Written Journal"
	Gratitude      = "Gratitude Journal"
	WeeklyGoals    = "Weekly Goals"
	Evening        = "Evening Reflection"
	DailyGrat      = "Daily Gratitude"
	HighLow        = "High/Low of the Day"
	AnxietyCheck   = "Anxiety Check-in"
	MoodTracker    = "Mood Tracker"
	ThoughtChal    = "Thought Challenge"
	SelfComp       = "Self-Compassion Exercise"
	PriorityTasks  = "Priority Tasks"
	BrainDump      = "Brain Dump"
	MeetingNotes   = "Meeting Notes"
	PoetryStarter  = "Poetry Starter"
	CharSketch     = "Character Sketch"
	DialoguePrompt = "Dialogue Prompt"
	RelationCheck  = "Relationship Check-in"
	GrowthReflect  = "Growth Reflection"
)

// DefaultPrompt seeds the single placeholder shown when a template has
// no registered prompt list.
const DefaultPrompt = "Write your thoughts here..."

var catalog = map[string]TemplateInfo{
	AIPrompt:       {Type: db_models.EntryTypeAIPrompt, Template: AIPrompt, TemplateID: 0},
	FreeWriting:    {Type: db_models.EntryTypeBlank, Template: FreeWriting, TemplateID: 1},
	Morning:        {Type: db_models.EntryTypeMorning, Template: Morning, TemplateID: 2},
	Night:          {Type: db_models.EntryTypeNight, Template: Night, TemplateID: 3},
	Todo:           {Type: db_models.EntryTypeTodo, Template: Todo, TemplateID: 4},
	Voice:          {Type: db_models.EntryTypeVoice, Template: Voice, TemplateID: 5},
	Written:        {Type: db_models.EntryTypeCamera, Template: Written, TemplateID: 6},
	Gratitude:      {Type: db_models.EntryTypeGratitude, Template: Gratitude, TemplateID: 7},
	WeeklyGoals:    {Type: db_models.EntryTypeOrganization, Template: WeeklyGoals, TemplateID: 8},
	Evening:        {Type: db_models.EntryTypeNight, Template: Evening, TemplateID: 9},
	DailyGrat:      {Type: db_models.EntryTypeGratitude, Template: DailyGrat, TemplateID: 10},
	HighLow:        {Type: db_models.EntryTypeNight, Template: HighLow, TemplateID: 11},
	AnxietyCheck:   {Type: db_models.EntryTypeMentalHealth, Template: AnxietyCheck, TemplateID: 12},
	MoodTracker:    {Type: db_models.EntryTypeMentalHealth, Template: MoodTracker, TemplateID: 13},
	ThoughtChal:    {Type: db_models.EntryTypeMentalHealth, Template: ThoughtChal, TemplateID: 14},
	SelfComp:       {Type: db_models.EntryTypeMentalHealth, Template: SelfComp, TemplateID: 15},
	PriorityTasks:  {Type: db_models.EntryTypeOrganization, Template: PriorityTasks, TemplateID: 16},
	BrainDump:      {Type: db_models.EntryTypeOrganization, Template: BrainDump, TemplateID: 17},
	MeetingNotes:   {Type: db_models.EntryTypeOrganization, Template: MeetingNotes, TemplateID: 18},
	PoetryStarter:  {Type: db_models.EntryTypeCreative, Template: PoetryStarter, TemplateID: 19},
	CharSketch:     {Type: db_models.EntryTypeCreative, Template: CharSketch, TemplateID: 20},
	DialoguePrompt: {Type: db_models.EntryTypeCreative, Template: DialoguePrompt, TemplateID: 21},
	RelationCheck:  {Type: db_models.EntryTypeRelationships, Template: RelationCheck, TemplateID: 22},
	GrowthReflect:  {Type: db_models.EntryTypePersonalGrowth, Template: GrowthReflect, TemplateID: 23},
}

var prompts = map[string][]string{
	Morning: {
		"How did you sleep?",
		"What are you grateful for today?",
		"What would make today great?",
	},
	Night: {
		"What went well today?",
		"What could have gone better?",
		"How do you feel now?",
	},
	Evening: {
		"What went well today?",
		"What could have gone better?",
		"How do you feel now?",
	},
	Gratitude: {
		"What are three things you're grateful for?",
		"Who made a difference in your day?",
		"What small moment do you want to remember?",
	},
	DailyGrat: {
		"What are three things you're grateful for?",
		"Who made a difference in your day?",
		"What small moment do you want to remember?",
	},
	HighLow: {
		"What was the high point of your day?",
		"What was the low point?",
		"What did each one teach you?",
	},
	AnxietyCheck: {
		"What is making you anxious right now?",
		"Where do you feel it in your body?",
		"What is one thing within your control?",
		"What would you tell a friend feeling this way?",
	},
	MoodTracker: {
		"How would you describe your mood right now?",
		"What happened just before you felt this way?",
		"What usually shifts this mood for you?",
	},
	ThoughtChal: {
		"What thought is bothering you?",
		"What evidence supports it?",
		"What evidence contradicts it?",
		"What is a more balanced way to see this?",
	},
	SelfComp: {
		"What are you being hard on yourself about?",
		"What would you say to someone you love in this situation?",
		"What do you need to hear right now?",
	},
	WeeklyGoals: {
		"What do you want to accomplish this week?",
		"What might get in the way?",
		"What is the first small step?",
	},
	PriorityTasks: {
		"What must get done today?",
		"What can wait?",
		"What can you let go of entirely?",
	},
	BrainDump: {
		"What is taking up space in your head right now?",
		"Which of these actually needs your attention today?",
	},
	MeetingNotes: {
		"What was discussed?",
		"What was decided?",
		"What are your action items?",
	},
	PoetryStarter: {
		"Pick an image from your day. Describe it in detail.",
		"What feeling does it carry?",
		"Write a few lines without worrying about form.",
	},
	CharSketch: {
		"Who is this character?",
		"What do they want?",
		"What stands in their way?",
	},
	DialoguePrompt: {
		"Who is speaking, and to whom?",
		"What is left unsaid between them?",
		"Write the conversation.",
	},
	RelationCheck: {
		"Which relationship is on your mind?",
		"What is going well in it?",
		"What feels strained, and why?",
		"What is one thing you could do differently?",
	},
	GrowthReflect: {
		"What have you learned about yourself recently?",
		"Where are you still growing?",
		"What progress are you proud of?",
	},
}

var freeWriteIdentity = TemplateInfo{
	Type:       db_models.EntryTypeBlank,
	Template:   FreeWriting,
	TemplateID: 1,
}

// Resolve maps a display label to its stored identity. A miss returns
// the free-write identity and ok=false so callers can report the typo
// rather than silently substituting; every caller still gets a valid
// triple to persist.
func Resolve(name string) (TemplateInfo, bool) {
	if info, ok := catalog[name]; ok {
		return info, true
	}
	return freeWriteIdentity, false
}

// Prompts returns the ordered prompt list for a template, or a
// single-element default when none is registered.
func Prompts(name string) ([]string, bool) {
	if list, ok := prompts[name]; ok {
		out := make([]string, len(list))
		copy(out, list)
		return out, true
	}
	return []string{DefaultPrompt}, false
}

// Names lists every registered template label. Order is not guaranteed.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	return out
}
