package dto

import (
	"time"

	"github.com/yourusername/studyquiz-api/internal/domain/entity"
	"github.com/yourusername/studyquiz-api/internal/service/quizgen"
)

// QuizQuestionResponse представляет вопрос квиза в формате для ответа клиенту.
// Рекомендуемый ответ не отдается вместе с квизом: пользователь сначала
// отвечает сам, а сверка происходит на стороне клиента после ответа.
type QuizQuestionResponse struct {
	ID        uint   `json:"id"`
	ChapterID uint   `json:"chapter_id"`
	Text      string `json:"text"`
	IsReview  bool   `json:"is_review"`
}

// GeneratedQuizResponse представляет собранный квиз
type GeneratedQuizResponse struct {
	SessionID      uint                   `json:"session_id"`
	Questions      []QuizQuestionResponse `json:"questions"`
	IncludesReview bool                   `json:"includes_review"`
}

// NewGeneratedQuizResponse создает DTO для собранного квиза
func NewGeneratedQuizResponse(quiz *quizgen.AssembledQuiz) *GeneratedQuizResponse {
	if quiz == nil {
		return nil
	}

	questions := make([]QuizQuestionResponse, len(quiz.Questions))
	for i, pq := range quiz.Questions {
		questions[i] = QuizQuestionResponse{
			ID:        pq.Question.ID,
			ChapterID: pq.Question.ChapterID,
			Text:      pq.Question.Text,
			IsReview:  pq.IsReview,
		}
	}

	return &GeneratedQuizResponse{
		SessionID:      quiz.SessionID,
		Questions:      questions,
		IncludesReview: quiz.IncludesReview,
	}
}

// ResultResponse представляет результат квиза в формате для ответа клиенту
type ResultResponse struct {
	ID             uint                  `json:"id"`
	UserID         uint                  `json:"user_id"`
	SessionID      *uint                 `json:"session_id,omitempty"`
	Score          float64               `json:"score"`
	IncludesReview bool                  `json:"includes_review"`
	Answers        []entity.AnswerRecord `json:"answers"`
	CreatedAt      time.Time             `json:"created_at"`
}

// NewResultResponse создает DTO для результата
func NewResultResponse(result *entity.QuizResult) *ResultResponse {
	if result == nil {
		return nil
	}
	return &ResultResponse{
		ID:             result.ID,
		UserID:         result.UserID,
		SessionID:      result.SessionID,
		Score:          result.Score,
		IncludesReview: result.IncludesReview,
		Answers:        result.Answers,
		CreatedAt:      result.CreatedAt,
	}
}

// HistoryResponse представляет список результатов пользователя
type HistoryResponse struct {
	Results []*ResultResponse `json:"results"`
	Total   int               `json:"total"`
}

// NewHistoryResponse создает DTO для истории результатов
func NewHistoryResponse(results []entity.QuizResult) *HistoryResponse {
	items := make([]*ResultResponse, len(results))
	for i := range results {
		items[i] = NewResultResponse(&results[i])
	}
	return &HistoryResponse{Results: items, Total: len(items)}
}
