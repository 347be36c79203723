package quizgen

import (
	"github.com/yourusername/studyquiz-api/internal/domain/entity"
	"github.com/yourusername/studyquiz-api/internal/domain/repository"
)

// Dependencies содержит зависимости для компонентов генерации квизов
type Dependencies struct {
	CourseRepo   repository.CourseRepository
	QuestionRepo repository.QuestionRepository
	SessionRepo  repository.SessionRepository
	ResultRepo   repository.ResultRepository
	CacheRepo    repository.CacheRepository
	Config       *Config
}

// QuestionPools содержит кандидатов на включение в квиз.
// New — вопросы из явно запрошенных глав, Review — вопросы из глав,
// которые пользователь проходил ранее, но сейчас не запросил.
type QuestionPools struct {
	New    []entity.Question
	Review []entity.Question
}

// PlannedQuestion — вопрос, отобранный в квиз, с пометкой пула происхождения
type PlannedQuestion struct {
	Question entity.Question
	IsReview bool
}

// AssembledQuiz — результат сборки квиза: созданная сессия и итоговый
// порядок вопросов
type AssembledQuiz struct {
	SessionID      uint
	Questions      []PlannedQuestion
	IncludesReview bool
}
