package question

import (
	"net/http"

	"github.com/saulo-duarte/codequiz-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// GenerateQuestion godoc
// @Summary      Generate a coding question
// @Description  Asks the configured model for a new coding-practice question.
// @Tags         questions
// @Produce      json
// @Success      200  {object}  question.CodingQuestion
// @Failure      502  {object}  config.ErrorBody
// @Router       /generate_question [post]
func (h *Handler) GenerateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	switch res := h.service.GenerateCodingQuestion(r.Context()).(type) {
	case *CodingQuestion:
		config.JSON(w, http.StatusOK, res)
	case *ErrorResponse:
		log.WithField("kind", res.Kind.String()).Errorf("Failed to generate question: %s", res.Message)
		config.Error(w, http.StatusBadGateway, res.Message)
	default:
		log.Errorf("unknown generation result %T", res)
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
