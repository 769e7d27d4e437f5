package content

// QuestionCategory groups constitutional questions by the teaching concern
// they interrogate.
type QuestionCategory string

const (
	CategoryTesting      QuestionCategory = "testing"
	CategoryLearning     QuestionCategory = "learning"
	CategoryListening    QuestionCategory = "listening"
	CategorySpecificity  QuestionCategory = "specificity"
	CategoryStudentFocus QuestionCategory = "student_focus"
	CategoryAdaptation   QuestionCategory = "adaptation"
	CategoryAuthenticity QuestionCategory = "authenticity"
	CategoryAgency       QuestionCategory = "agency"
	CategoryEmotional    QuestionCategory = "emotional"
	CategoryChallenge    QuestionCategory = "challenge"
)

// ConstitutionalQuestion is a single self-interrogation question a persona
// draws on while teaching.
type ConstitutionalQuestion struct {
	Key                  string           `json:"key"`
	Question             string           `json:"question"`
	Category             QuestionCategory `json:"category"`
	PedagogicalPrinciple string           `json:"pedagogical_principle"`
	PersonaBias          string           `json:"persona_bias,omitempty"`
}

// QuestionDeck maps question keys to questions.
type QuestionDeck map[string]ConstitutionalQuestion

// Persona is a simulated teaching agent, defined by a character sheet and
// the constitutional questions it interrogates itself with. Immutable for
// the duration of a run.
type Persona struct {
	Name         string   `json:"name"`
	Archetype    string   `json:"archetype"`
	Description  string   `json:"description"`
	QuestionKeys []string `json:"question_keys"`
}

// Scenario is the situational frame a dialogue runs in. Immutable,
// supplied externally, read-only input to a run.
type Scenario struct {
	ID    string `json:"id"`
	Topic string `json:"topic"`
	Title string `json:"title"`

	// Prompt is the situation as presented to the personas.
	Prompt string `json:"prompt"`

	// StudentContext is the situation as experienced by the student.
	StudentContext string `json:"student_context"`

	// Intensity tags the emotional difficulty: low, medium, or high.
	Intensity string `json:"intensity"`
}
