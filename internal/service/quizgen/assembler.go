package quizgen

import (
	"fmt"
	"log"

	"github.com/yourusername/studyquiz-api/internal/domain/entity"
)

// Assembler собирает итоговый квиз из пулов кандидатов и фиксирует
// учебную сессию. Ровно одна сессия создаётся на каждый вызов,
// независимо от размеров пулов.
type Assembler struct {
	deps     *Dependencies
	shuffler Shuffler
}

// NewAssembler создаёт новый сборщик квизов
func NewAssembler(deps *Dependencies, shuffler Shuffler) *Assembler {
	return &Assembler{deps: deps, shuffler: shuffler}
}

// AssembleQuiz перемешивает пулы независимо, берёт не более
// NewQuestionLimit новых и ReviewQuestionLimit повторяемых вопросов
// (без добора из соседнего пула), помечает происхождение каждого вопроса
// и перемешивает объединённый список ещё раз, чтобы новый и повторяемый
// материал чередовались, а не шли блоками.
func (a *Assembler) AssembleQuiz(pools *QuestionPools, requestedChapterIDs []uint, userID uint) (*AssembledQuiz, error) {
	newPicked := a.pick(pools.New, a.deps.Config.NewQuestionLimit)
	reviewPicked := a.pick(pools.Review, a.deps.Config.ReviewQuestionLimit)

	questions := make([]PlannedQuestion, 0, len(newPicked)+len(reviewPicked))
	for _, q := range newPicked {
		questions = append(questions, PlannedQuestion{Question: q, IsReview: false})
	}
	for _, q := range reviewPicked {
		questions = append(questions, PlannedQuestion{Question: q, IsReview: true})
	}

	// Финальное перемешивание объединённого списка
	a.shuffler.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})

	session := &entity.StudySession{
		UserID:          userID,
		ChaptersCovered: entity.UintArray(requestedChapterIDs),
	}
	if err := a.deps.SessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create study session: %w", err)
	}

	log.Printf("[Assembler] Сессия #%d для пользователя #%d: %d новых, %d на повторение",
		session.ID, userID, len(newPicked), len(reviewPicked))

	return &AssembledQuiz{
		SessionID:      session.ID,
		Questions:      questions,
		IncludesReview: len(reviewPicked) > 0,
	}, nil
}

// pick перемешивает пул и возвращает не более limit вопросов.
// Исходный срез не изменяется.
func (a *Assembler) pick(pool []entity.Question, limit int) []entity.Question {
	shuffled := make([]entity.Question, len(pool))
	copy(shuffled, pool)

	a.shuffler.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) > limit {
		shuffled = shuffled[:limit]
	}
	return shuffled
}
