package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/studyquiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/studyquiz-api/internal/pkg/errors"
)

// ============================================================================
// Моки для CourseService
// ============================================================================

// MockCacheRepoForCourseService реализует repository.CacheRepository
type MockCacheRepoForCourseService struct {
	mock.Mock
}

func (m *MockCacheRepoForCourseService) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepoForCourseService) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

func (m *MockCacheRepoForCourseService) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func createTestCourseService() (*CourseService, *MockCourseRepoForQuizService, *MockQuestionRepoForQuizService, *MockCacheRepoForCourseService) {
	courseRepo := new(MockCourseRepoForQuizService)
	questionRepo := new(MockQuestionRepoForQuizService)
	cacheRepo := new(MockCacheRepoForCourseService)
	return NewCourseService(courseRepo, questionRepo, cacheRepo), courseRepo, questionRepo, cacheRepo
}

// ============================================================================
// Тесты для CourseService
// ============================================================================

func TestCourseService_CreateCourse_Success(t *testing.T) {
	// Arrange
	courseService, courseRepo, _, _ := createTestCourseService()
	courseRepo.On("Create", mock.AnythingOfType("*entity.Course")).Return(nil)

	// Act
	course, err := courseService.CreateCourse(42, "История Рима", "Античность")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(42), course.UserID)
	assert.Equal(t, "История Рима", course.Title)
	courseRepo.AssertExpectations(t)
}

func TestCourseService_CreateCourse_EmptyTitle(t *testing.T) {
	// Arrange
	courseService, courseRepo, _, _ := createTestCourseService()

	// Act
	course, err := courseService.CreateCourse(42, "   ", "описание")

	// Assert
	require.Error(t, err, "Пустой заголовок должен отклоняться")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, course)
	courseRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCourseService_AddChapters_ContinuesOrderIndex(t *testing.T) {
	// Тест: порядковые номера новых глав продолжают существующие
	courseService, courseRepo, _, cacheRepo := createTestCourseService()

	courseRepo.On("GetByID", uint(1)).Return(ownedCourse(1, 42), nil)
	courseRepo.On("GetChapters", uint(1)).Return([]entity.Chapter{
		{ID: 10, CourseID: 1, Title: "Глава 1", OrderIndex: 0},
		{ID: 11, CourseID: 1, Title: "Глава 2", OrderIndex: 1},
	}, nil)

	var created []entity.Chapter
	courseRepo.On("CreateChapters", mock.AnythingOfType("[]entity.Chapter")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).([]entity.Chapter)
		}).
		Return(nil)
	cacheRepo.On("Delete", "course:1:chapters").Return(nil)

	// Act
	chapters, err := courseService.AddChapters(42, 1, []string{"Глава 3", "Глава 4"})

	// Assert
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	require.Len(t, created, 2)
	assert.Equal(t, 2, created[0].OrderIndex, "Первая новая глава продолжает нумерацию")
	assert.Equal(t, 3, created[1].OrderIndex)
	cacheRepo.AssertCalled(t, "Delete", "course:1:chapters")
}

func TestCourseService_AddChapters_ForeignCourse(t *testing.T) {
	// Arrange
	courseService, courseRepo, _, cacheRepo := createTestCourseService()
	courseRepo.On("GetByID", uint(1)).Return(ownedCourse(1, 99), nil)

	// Act
	chapters, err := courseService.AddChapters(42, 1, []string{"Глава 1"})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Nil(t, chapters)
	courseRepo.AssertNotCalled(t, "CreateChapters", mock.Anything)
	cacheRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCourseService_AddChapters_EmptyTitle(t *testing.T) {
	// Arrange
	courseService, courseRepo, _, _ := createTestCourseService()
	courseRepo.On("GetByID", uint(1)).Return(ownedCourse(1, 42), nil)
	courseRepo.On("GetChapters", uint(1)).Return([]entity.Chapter{}, nil)

	// Act
	chapters, err := courseService.AddChapters(42, 1, []string{"Глава 1", "  "})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, chapters)
	courseRepo.AssertNotCalled(t, "CreateChapters", mock.Anything)
}

func TestCourseService_UploadQuestions_Success(t *testing.T) {
	// Arrange
	courseService, courseRepo, questionRepo, _ := createTestCourseService()

	courseRepo.On("GetChapterByID", uint(10)).
		Return(&entity.Chapter{ID: 10, CourseID: 1, Title: "Глава 1"}, nil)
	courseRepo.On("GetByID", uint(1)).Return(ownedCourse(1, 42), nil)

	var created []entity.Question
	questionRepo.On("CreateBatch", mock.AnythingOfType("[]entity.Question")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).([]entity.Question)
		}).
		Return(nil)

	questions := []entity.Question{
		{Text: "Вопрос без типа"},
		{Text: "Карточка", Type: entity.QuestionTypeFlashcard},
	}

	// Act
	err := courseService.UploadQuestions(42, 10, questions)

	// Assert
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, uint(10), created[0].ChapterID, "Глава должна проставляться сервисом")
	assert.Equal(t, entity.QuestionTypeExam, created[0].Type, "Тип по умолчанию exam")
	assert.Equal(t, entity.QuestionTypeFlashcard, created[1].Type)
}

func TestCourseService_UploadQuestions_UnknownType(t *testing.T) {
	// Arrange
	courseService, courseRepo, questionRepo, _ := createTestCourseService()

	courseRepo.On("GetChapterByID", uint(10)).
		Return(&entity.Chapter{ID: 10, CourseID: 1}, nil)
	courseRepo.On("GetByID", uint(1)).Return(ownedCourse(1, 42), nil)

	// Act
	err := courseService.UploadQuestions(42, 10, []entity.Question{
		{Text: "Вопрос", Type: "essay"},
	})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	questionRepo.AssertNotCalled(t, "CreateBatch", mock.Anything)
}

func TestCourseService_UploadQuestions_ForeignChapter(t *testing.T) {
	// Тест: глава чужого курса недоступна для загрузки
	courseService, courseRepo, questionRepo, _ := createTestCourseService()

	courseRepo.On("GetChapterByID", uint(10)).
		Return(&entity.Chapter{ID: 10, CourseID: 1}, nil)
	courseRepo.On("GetByID", uint(1)).Return(ownedCourse(1, 99), nil)

	// Act
	err := courseService.UploadQuestions(42, 10, []entity.Question{{Text: "Вопрос"}})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	questionRepo.AssertNotCalled(t, "CreateBatch", mock.Anything)
}

func TestCourseService_UploadQuestions_Empty(t *testing.T) {
	// Arrange
	courseService, courseRepo, _, _ := createTestCourseService()

	// Act
	err := courseService.UploadQuestions(42, 10, nil)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	courseRepo.AssertNotCalled(t, "GetChapterByID", mock.Anything)
}
