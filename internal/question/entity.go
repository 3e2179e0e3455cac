package question

type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// CodingQuestion is a generated practice question. Difficulty is one of
// easy, medium or hard by convention but is not enforced.
type CodingQuestion struct {
	Question   string     `json:"question"`
	Difficulty string     `json:"difficulty"`
	Category   string     `json:"category"`
	Hints      []string   `json:"hints"`
	Solution   string     `json:"solution"`
	TestCases  []TestCase `json:"test_cases"`
}

// ErrorKind classifies why a generation failed.
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindExtraction
	KindParse
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindExtraction:
		return "extraction"
	case KindParse:
		return "parse"
	case KindValidation:
		return "validation"
	default:
		return "unexpected"
	}
}

const StatusError = "error"

type ErrorResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"-"`
}

func newErrorResponse(kind ErrorKind, message string) *ErrorResponse {
	return &ErrorResponse{Status: StatusError, Message: message, Kind: kind}
}

// Result is either a *CodingQuestion or an *ErrorResponse. No other type
// implements it; callers branch with a type switch.
type Result interface {
	isResult()
}

func (*CodingQuestion) isResult() {}
func (*ErrorResponse) isResult()  {}
