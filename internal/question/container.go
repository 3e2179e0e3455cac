package question

import "github.com/saulo-duarte/codequiz-lambda/internal/llm"

type QuestionContainer struct {
	Handler *Handler
	Service Service
}

func NewQuestionContainer(provider llm.Provider, cfg Config) *QuestionContainer {
	service := NewService(provider, cfg)
	handler := NewHandler(service)

	return &QuestionContainer{
		Handler: handler,
		Service: service,
	}
}
