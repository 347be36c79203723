package quizgen

import (
	"errors"
	"fmt"
	"log"

	apperrors "github.com/yourusername/studyquiz-api/internal/pkg/errors"
)

// Selector вычисляет пулы кандидатов для квиза: новый материал из
// запрошенных глав и материал на повторение из недавней истории.
// Чтение без побочных эффектов.
type Selector struct {
	deps *Dependencies
}

// NewSelector создаёт новый селектор
func NewSelector(deps *Dependencies) *Selector {
	return &Selector{deps: deps}
}

// SelectQuestions возвращает пулы кандидатов для пользователя.
// Главы на повторение берутся из последних результатов: глава попадает
// в повторение, если она принадлежит курсу и НЕ входит в запрошенный
// набор — явный запрос всегда имеет приоритет над неявным повторением.
func (s *Selector) SelectQuestions(courseID uint, requestedChapterIDs []uint, userID uint) (*QuestionPools, error) {
	if len(requestedChapterIDs) == 0 {
		return nil, fmt.Errorf("%w: chapter_ids must not be empty", apperrors.ErrValidation)
	}

	// 1. Вселенная курса — все главы, принадлежащие курсу
	universe, err := s.courseChapterIDs(courseID)
	if err != nil {
		return nil, err
	}
	if len(universe) == 0 {
		return nil, fmt.Errorf("%w: course %d has no chapters", apperrors.ErrNotFound, courseID)
	}

	universeSet := make(map[uint]bool, len(universe))
	for _, id := range universe {
		universeSet[id] = true
	}

	// 2. Проверка принадлежности: запрошенные главы обязаны входить в курс.
	// Чужие идентификаторы отклоняются до любого обращения к вопросам.
	for _, id := range requestedChapterIDs {
		if !universeSet[id] {
			return nil, fmt.Errorf("%w: chapter %d does not belong to course %d", apperrors.ErrForbidden, id, courseID)
		}
	}

	// 3. Новый пул — exam-вопросы запрошенных глав
	newPool, err := s.deps.QuestionRepo.GetExamByChapterIDs(requestedChapterIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load new pool: %w", err)
	}

	// 4. Главы на повторение из окна последних результатов
	reviewChapterIDs, err := s.reviewChapterIDs(userID, requestedChapterIDs, universeSet)
	if err != nil {
		return nil, err
	}

	// 5. Пул повторения: пустой набор глав даёт пустой пул
	reviewPool, err := s.deps.QuestionRepo.GetExamByChapterIDs(reviewChapterIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load review pool: %w", err)
	}

	return &QuestionPools{New: newPool, Review: reviewPool}, nil
}

// reviewChapterIDs собирает главы на повторение из последних результатов.
// Глава учитывается, если принадлежит курсу и не входит в запрошенный набор.
// Идентификаторы глав из чужих курсов, попавшие в старые результаты,
// отбрасываются фильтром по вселенной курса.
func (s *Selector) reviewChapterIDs(userID uint, requestedChapterIDs []uint, universeSet map[uint]bool) ([]uint, error) {
	results, err := s.deps.ResultRepo.GetRecentByUser(userID, s.deps.Config.HistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent results: %w", err)
	}

	requestedSet := make(map[uint]bool, len(requestedChapterIDs))
	for _, id := range requestedChapterIDs {
		requestedSet[id] = true
	}

	seen := make(map[uint]bool)
	var reviewIDs []uint
	for _, result := range results {
		for _, chapterID := range result.Answers.ChapterIDs() {
			if seen[chapterID] || !universeSet[chapterID] || requestedSet[chapterID] {
				continue
			}
			seen[chapterID] = true
			reviewIDs = append(reviewIDs, chapterID)
		}
	}
	return reviewIDs, nil
}

// courseChapterIDs возвращает идентификаторы глав курса, используя кеш.
// Ошибки Redis не фатальны: при любой проблеме с кешем список читается из базы.
func (s *Selector) courseChapterIDs(courseID uint) ([]uint, error) {
	cacheKey := fmt.Sprintf("course:%d:chapters", courseID)

	if s.deps.CacheRepo != nil {
		var cached []uint
		err := s.deps.CacheRepo.GetJSON(cacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[Selector] WARNING: Ошибка Redis при чтении глав курса %d: %v", courseID, err)
		}
	}

	ids, err := s.deps.CourseRepo.GetChapterIDs(courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load course chapters: %w", err)
	}

	if s.deps.CacheRepo != nil && len(ids) > 0 {
		if err := s.deps.CacheRepo.SetJSON(cacheKey, ids, s.deps.Config.ChapterCacheTTL); err != nil {
			log.Printf("[Selector] WARNING: Не удалось закешировать главы курса %d: %v", courseID, err)
		}
	}

	return ids, nil
}
