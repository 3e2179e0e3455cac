package question

const (
	humanTurn     = "\n\nHuman:"
	assistantTurn = "\n\nAssistant:"
)

const instructions = `Generate a coding question about random programming topics like data structures and algorithms. The response should be in JSON format with the following structure:
{
    "question": "The full text of the question",
    "difficulty": "easy|medium|hard",
    "category": "data structures|algorithms|general programming",
    "hints": ["Hint 1", "Hint 2"],
    "solution": "A brief solution or approach to solve the problem",
    "test_cases": [
        {"input": "Sample input 1", "expected_output": "Expected output 1"},
        {"input": "Sample input 2", "expected_output": "Expected output 2"},
        {"input": "Sample input 3", "expected_output": "Expected output 3"}
    ]
}
Ensure all fields are filled appropriately, including at least 3 sample test cases.
Enclose the entire JSON response within backticks (` + delimiter + `).
Do not include any additional text or explanations outside the backticks.`

// BuildPrompt returns the instruction sent to the model. It takes no input
// and always returns the same text.
func BuildPrompt() string {
	return humanTurn + "\n" + instructions + "\n" + assistantTurn
}
