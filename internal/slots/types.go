package slots

// Status of a slot filling exchange
type Status string

const (
	StatusComplete   Status = "complete"
	StatusIncomplete Status = "incomplete"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// SlotResult is the outcome of one extraction turn
type SlotResult struct {
	Status       Status
	FilledSlots  map[string]string
	MissingSlots []string
	NextSlot     string
	NextQuestion string
	Attempts     int
}

// Schema defines the slots for one intent/sub-intent pair. Required
// order doubles as the order in which missing slots get asked about.
type Schema struct {
	Required []string
	Optional []string
	Prompts  map[string]QuestionSet
}

// QuestionSet holds the localized question templates for one slot
type QuestionSet struct {
	En       string
	Hi       string
	Hinglish string
}
