package question

import "fmt"

var requiredFields = []string{"question", "difficulty", "category", "hints", "solution", "test_cases"}

const minTestCases = 3

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ValidateShape checks that candidate has every required field, that hints
// and test_cases are lists, and that there are at least three test cases
// each carrying input and expected_output. Field values are not checked.
func ValidateShape(candidate map[string]any) error {
	for _, field := range requiredFields {
		if _, ok := candidate[field]; !ok {
			return &ValidationError{Message: fmt.Sprintf("Missing required field: %s", field)}
		}
	}

	if _, ok := candidate["hints"].([]any); !ok {
		return &ValidationError{Message: "Hints should be a list"}
	}

	testCases, ok := candidate["test_cases"].([]any)
	if !ok || len(testCases) < minTestCases {
		return &ValidationError{Message: "Test cases should be a list with at least 3 items"}
	}

	for _, tc := range testCases {
		obj, ok := tc.(map[string]any)
		if !ok {
			return &ValidationError{Message: "Each test case should have 'input' and 'expected_output'"}
		}
		_, hasInput := obj["input"]
		_, hasOutput := obj["expected_output"]
		if !hasInput || !hasOutput {
			return &ValidationError{Message: "Each test case should have 'input' and 'expected_output'"}
		}
	}
	return nil
}
