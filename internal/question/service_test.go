package question_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/codequiz-lambda/internal/llm"
	"github.com/saulo-duarte/codequiz-lambda/internal/question"
)

func generate(t *testing.T, cfg question.Config, responses ...llm.MockResponse) (question.Result, *llm.MockProvider) {
	t.Helper()
	mock := llm.NewMockProvider(responses...)
	svc := question.NewService(mock, cfg)
	return svc.GenerateCodingQuestion(context.Background()), mock
}

func requireError(t *testing.T, res question.Result) *question.ErrorResponse {
	t.Helper()
	errResp, ok := res.(*question.ErrorResponse)
	require.True(t, ok, "expected *ErrorResponse, got %T", res)
	assert.Equal(t, "error", errResp.Status)
	return errResp
}

func TestGenerateCodingQuestion_Success(t *testing.T) {
	res, mock := generate(t, question.DefaultConfig(), llm.MockResponse{Text: "Here is one: `" + validQuestionJSON + "`"})

	q, ok := res.(*question.CodingQuestion)
	require.True(t, ok, "expected *CodingQuestion, got %T", res)
	assert.Equal(t, "q", q.Question)
	assert.Equal(t, "easy", q.Difficulty)
	assert.Equal(t, "algorithms", q.Category)
	assert.Empty(t, q.Hints)
	assert.Equal(t, "s", q.Solution)
	require.Len(t, q.TestCases, 3)
	assert.Equal(t, question.TestCase{Input: "3", ExpectedOutput: "3"}, q.TestCases[2])

	require.Equal(t, 1, mock.CallCount())
	assert.Equal(t, question.BuildPrompt(), mock.Calls[0].Prompt)
	assert.Equal(t, 1500, mock.Calls[0].MaxTokens)
}

func TestGenerateCodingQuestion_ExtractionFailure(t *testing.T) {
	for _, text := range []string{"no backticks at all", "a single ` backtick"} {
		res, _ := generate(t, question.DefaultConfig(), llm.MockResponse{Text: text})

		errResp := requireError(t, res)
		assert.Equal(t, "Failed to extract JSON content from the response", errResp.Message)
		assert.Equal(t, question.KindExtraction, errResp.Kind)
	}
}

func TestGenerateCodingQuestion_InvalidJSON(t *testing.T) {
	res, _ := generate(t, question.DefaultConfig(), llm.MockResponse{Text: "`not json`"})

	errResp := requireError(t, res)
	assert.Equal(t, "Invalid JSON response", errResp.Message)
	assert.Equal(t, question.KindParse, errResp.Kind)
}

func TestGenerateCodingQuestion_TooFewTestCases(t *testing.T) {
	raw := `{"question":"q","difficulty":"easy","category":"c","hints":[],"solution":"s","test_cases":[{"input":"1","expected_output":"1"},{"input":"2","expected_output":"2"}]}`
	res, _ := generate(t, question.DefaultConfig(), llm.MockResponse{Text: "`" + raw + "`"})

	errResp := requireError(t, res)
	assert.Equal(t, "Test cases should be a list with at least 3 items", errResp.Message)
	assert.Equal(t, question.KindValidation, errResp.Kind)
}

func TestGenerateCodingQuestion_MissingField(t *testing.T) {
	raw := strings.Replace(validQuestionJSON, `"category":"algorithms",`, "", 1)
	res, _ := generate(t, question.DefaultConfig(), llm.MockResponse{Text: "`" + raw + "`"})

	errResp := requireError(t, res)
	assert.Equal(t, "Missing required field: category", errResp.Message)
}

func TestGenerateCodingQuestion_NonObjectJSON(t *testing.T) {
	res, _ := generate(t, question.DefaultConfig(), llm.MockResponse{Text: "`[1, 2, 3]`"})

	errResp := requireError(t, res)
	assert.Equal(t, "Missing required field: question", errResp.Message)
	assert.Equal(t, question.KindValidation, errResp.Kind)
}

func TestGenerateCodingQuestion_WrongTypes(t *testing.T) {
	raw := strings.Replace(validQuestionJSON, `"question":"q"`, `"question":7`, 1)
	res, _ := generate(t, question.DefaultConfig(), llm.MockResponse{Text: "`" + raw + "`"})

	errResp := requireError(t, res)
	assert.Contains(t, errResp.Message, "Response does not match the question schema")
	assert.Equal(t, question.KindValidation, errResp.Kind)
}

func TestGenerateCodingQuestion_ProviderError(t *testing.T) {
	res, _ := generate(t, question.DefaultConfig(), llm.MockResponse{Err: errors.New("connection reset")})

	errResp := requireError(t, res)
	assert.Equal(t, "An unexpected error occurred: connection reset", errResp.Message)
	assert.Equal(t, question.KindUnexpected, errResp.Kind)
}

type panickingProvider struct{}

func (panickingProvider) Complete(context.Context, llm.Request) (*llm.Response, error) {
	panic("boom")
}

func (panickingProvider) ModelID() string { return "panics" }

func TestGenerateCodingQuestion_RecoversPanic(t *testing.T) {
	svc := question.NewService(panickingProvider{}, question.DefaultConfig())

	var res question.Result
	require.NotPanics(t, func() { res = svc.GenerateCodingQuestion(context.Background()) })

	errResp := requireError(t, res)
	assert.Equal(t, "An unexpected error occurred: boom", errResp.Message)
}

type unnamedProvider struct{}

func (unnamedProvider) Complete(context.Context, llm.Request) (*llm.Response, error) {
	return &llm.Response{}, nil
}

func (unnamedProvider) ModelID() string { panic("no model configured") }

func TestGenerateCodingQuestion_RecoversPanicBeforeCall(t *testing.T) {
	svc := question.NewService(unnamedProvider{}, question.DefaultConfig())

	var res question.Result
	require.NotPanics(t, func() { res = svc.GenerateCodingQuestion(context.Background()) })
	errResp := requireError(t, res)
	assert.Equal(t, "An unexpected error occurred: no model configured", errResp.Message)

	nilSvc := question.NewService(nil, question.DefaultConfig())
	require.NotPanics(t, func() { res = nilSvc.GenerateCodingQuestion(context.Background()) })
	errResp = requireError(t, res)
	assert.Equal(t, question.KindUnexpected, errResp.Kind)
}

type slowProvider struct{}

func (slowProvider) Complete(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestGenerateCodingQuestion_Timeout(t *testing.T) {
	cfg := question.DefaultConfig()
	cfg.Timeout = 10 * time.Millisecond
	svc := question.NewService(slowProvider{}, cfg)

	errResp := requireError(t, svc.GenerateCodingQuestion(context.Background()))
	assert.Equal(t, "An unexpected error occurred: "+context.DeadlineExceeded.Error(), errResp.Message)
}

func TestGenerateCodingQuestion_ExtractionModes(t *testing.T) {
	text := "Consider `std::map`. Answer: `" + validQuestionJSON + "`"

	strict, _ := generate(t, question.DefaultConfig(), llm.MockResponse{Text: text})
	errResp := requireError(t, strict)
	assert.Equal(t, "Invalid JSON response", errResp.Message)

	cfg := question.DefaultConfig()
	cfg.StrictExtraction = false
	lenient, _ := generate(t, cfg, llm.MockResponse{Text: text})
	_, ok := lenient.(*question.CodingQuestion)
	assert.True(t, ok, "expected *CodingQuestion, got %T", lenient)

	malformed, _ := generate(t, cfg, llm.MockResponse{Text: "```json\n{\"question\": \n```"})
	errResp = requireError(t, malformed)
	assert.Equal(t, "Invalid JSON response", errResp.Message)
	assert.Equal(t, question.KindParse, errResp.Kind)
}

func TestGenerateCodingQuestion_SameShapeForSameOutput(t *testing.T) {
	text := "`" + validQuestionJSON + "`"
	mock := llm.NewMockProvider(llm.MockResponse{Text: text}, llm.MockResponse{Text: text})
	svc := question.NewService(mock, question.DefaultConfig())

	first := svc.GenerateCodingQuestion(context.Background())
	second := svc.GenerateCodingQuestion(context.Background())

	assert.IsType(t, &question.CodingQuestion{}, first)
	assert.Equal(t, first, second)
}
