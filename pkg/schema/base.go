package schema

// QuestionType selects the processor that validates and formats an answer.
type QuestionType string

const (
	QuestionText   QuestionType = "text"   // free text with optional length bounds
	QuestionDate   QuestionType = "date"   // dd.MM.yyyy birth date
	QuestionNumber QuestionType = "number" // decimal with optional min/max
	QuestionSelect QuestionType = "select" // one of a fixed list of values
	QuestionPhone  QuestionType = "phone"  // Russian mobile number
)

// QuestionTypes lists every supported question type in declaration order.
var QuestionTypes = []QuestionType{
	QuestionText,
	QuestionDate,
	QuestionNumber,
	QuestionSelect,
	QuestionPhone,
}

// Valid reports whether t is one of the supported question types.
func (t QuestionType) Valid() bool {
	for _, known := range QuestionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Record format and storage limits.
const (
	DateLayout        = "02.01.2006" // dd.MM.yyyy
	DateHint          = "дд.мм.гггг"
	CompletedMarker   = "Анкета заполнена:"
	RecordExtension   = ".txt"
	UnknownName       = "Unknown"
	FileNameMaxLength = 50
	PathMaxLength     = 260
	DefaultSurveyDir  = "Анкеты"
	DefaultSurveyType = "developer"
	DefaultMinAge     = 0
	DefaultMaxAge     = 120
)
