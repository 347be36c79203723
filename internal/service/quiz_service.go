package service

import (
	"fmt"
	"log"

	"github.com/yourusername/studyquiz-api/internal/domain/entity"
	"github.com/yourusername/studyquiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/studyquiz-api/internal/pkg/errors"
	"github.com/yourusername/studyquiz-api/internal/service/quizgen"
)

// QuizService оркестрирует генерацию квизов, приём результатов и историю
type QuizService struct {
	selector    *quizgen.Selector
	assembler   *quizgen.Assembler
	courseRepo  repository.CourseRepository
	sessionRepo repository.SessionRepository
	resultRepo  repository.ResultRepository
	config      *quizgen.Config
}

// NewQuizService создает новый сервис квизов
func NewQuizService(deps *quizgen.Dependencies, shuffler quizgen.Shuffler) *QuizService {
	return &QuizService{
		selector:    quizgen.NewSelector(deps),
		assembler:   quizgen.NewAssembler(deps, shuffler),
		courseRepo:  deps.CourseRepo,
		sessionRepo: deps.SessionRepo,
		resultRepo:  deps.ResultRepo,
		config:      deps.Config,
	}
}

// GenerateQuiz собирает квиз из новых и повторяемых вопросов и создает
// учебную сессию. Операция генерации и операция сдачи результата —
// независимые циклы запрос/ответ.
func (s *QuizService) GenerateQuiz(userID, courseID uint, chapterIDs []uint) (*quizgen.AssembledQuiz, error) {
	if _, err := s.getOwnedCourse(userID, courseID); err != nil {
		return nil, err
	}

	pools, err := s.selector.SelectQuestions(courseID, chapterIDs, userID)
	if err != nil {
		return nil, err
	}

	quiz, err := s.assembler.AssembleQuiz(pools, chapterIDs, userID)
	if err != nil {
		return nil, err
	}

	log.Printf("[QuizService] Квиз для пользователя #%d по курсу #%d: %d вопросов, повторение=%t",
		userID, courseID, len(quiz.Questions), quiz.IncludesReview)
	return quiz, nil
}

// SubmitResult принимает самооценённые ответы, считает балл и сохраняет
// результат. Ровно одна запись результата создается на вызов и никогда
// не обновляется. sessionID опционален: без него результат хранится
// без привязки к сессии.
func (s *QuizService) SubmitResult(userID uint, sessionID *uint, answers entity.AnswerRecordArray) (*entity.QuizResult, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: answers must not be empty", apperrors.ErrValidation)
	}

	if sessionID != nil {
		session, err := s.sessionRepo.GetByID(*sessionID)
		if err != nil {
			return nil, err
		}
		if session.UserID != userID {
			return nil, fmt.Errorf("%w: session %d belongs to another user", apperrors.ErrForbidden, *sessionID)
		}
	}

	result := &entity.QuizResult{
		UserID:         userID,
		SessionID:      sessionID,
		Answers:        answers,
		Score:          calculateScore(answers),
		IncludesReview: answers.ContainsReview(),
	}

	if err := s.resultRepo.Create(result); err != nil {
		return nil, fmt.Errorf("failed to save quiz result: %w", err)
	}

	log.Printf("[QuizService] Результат #%d пользователя #%d: балл %.1f из %d ответов",
		result.ID, userID, result.Score, len(answers))
	return result, nil
}

// GetHistory возвращает последние результаты пользователя.
// Курс без глав дает пустой список без ошибки. Сам список истории
// не фильтруется по курсу: возвращаются последние результаты
// пользователя целиком, ограниченные HistoryLimit.
func (s *QuizService) GetHistory(userID, courseID uint) ([]entity.QuizResult, error) {
	if _, err := s.getOwnedCourse(userID, courseID); err != nil {
		return nil, err
	}

	chapterIDs, err := s.courseRepo.GetChapterIDs(courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load course chapters: %w", err)
	}
	if len(chapterIDs) == 0 {
		return []entity.QuizResult{}, nil
	}

	return s.resultRepo.GetRecentByUser(userID, s.config.HistoryLimit)
}

// getOwnedCourse возвращает курс, если он существует и принадлежит пользователю
func (s *QuizService) getOwnedCourse(userID, courseID uint) (*entity.Course, error) {
	course, err := s.courseRepo.GetByID(courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsOwnedBy(userID) {
		return nil, fmt.Errorf("%w: course %d belongs to another user", apperrors.ErrForbidden, courseID)
	}
	return course, nil
}

// calculateScore считает балл 0-100 по самооценке пользователя
func calculateScore(answers entity.AnswerRecordArray) float64 {
	total := len(answers)
	if total == 0 {
		return 0
	}
	return float64(answers.CountCorrect()) / float64(total) * 100
}
