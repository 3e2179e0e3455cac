package question_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/codequiz-lambda/internal/question"
)

type stubService struct {
	result question.Result
}

func (s stubService) GenerateCodingQuestion(context.Context) question.Result {
	return s.result
}

func TestHandler_GenerateQuestion(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		q := &question.CodingQuestion{
			Question:   "q",
			Difficulty: "medium",
			Category:   "algorithms",
			Hints:      []string{"h"},
			Solution:   "s",
			TestCases:  []question.TestCase{{Input: "1", ExpectedOutput: "1"}},
		}
		h := question.NewHandler(stubService{result: q})

		w := httptest.NewRecorder()
		h.GenerateQuestion(w, httptest.NewRequest(http.MethodPost, "/generate_question", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var got question.CodingQuestion
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, *q, got)
	})

	// Every error payload maps to 502 with its message as detail, regardless
	// of the question text.
	t.Run("ErrorResponse", func(t *testing.T) {
		h := question.NewHandler(stubService{result: &question.ErrorResponse{
			Status:  "error",
			Message: "Invalid JSON response",
			Kind:    question.KindParse,
		}})

		w := httptest.NewRecorder()
		h.GenerateQuestion(w, httptest.NewRequest(http.MethodPost, "/generate_question", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.JSONEq(t, `{"detail":"Invalid JSON response"}`, w.Body.String())
	})

	t.Run("QuestionStartingWithErrorIsStillSuccess", func(t *testing.T) {
		q := &question.CodingQuestion{Question: "Error: explain this stack trace", TestCases: []question.TestCase{}}
		h := question.NewHandler(stubService{result: q})

		w := httptest.NewRecorder()
		h.GenerateQuestion(w, httptest.NewRequest(http.MethodPost, "/generate_question", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NilResult", func(t *testing.T) {
		h := question.NewHandler(stubService{})

		w := httptest.NewRecorder()
		h.GenerateQuestion(w, httptest.NewRequest(http.MethodPost, "/generate_question", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
