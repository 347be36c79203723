package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/studyquiz-api/internal/domain/entity"
	"github.com/yourusername/studyquiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/studyquiz-api/internal/pkg/errors"
	"github.com/yourusername/studyquiz-api/internal/service"
)

// CourseHandler обрабатывает запросы, связанные с курсами и главами
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler создает новый обработчик курсов
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// CreateCourseRequest представляет запрос на создание курса
type CreateCourseRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// CreateCourse обрабатывает запрос на создание курса
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courseService.CreateCourse(userID, req.Title, req.Description)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCourseResponse(course))
}

// ListCourses возвращает курсы текущего пользователя
func (h *CourseHandler) ListCourses(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	courses, err := h.courseService.ListCourses(userID)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": dto.NewCourseListResponse(courses)})
}

// GetChapters возвращает главы курса
func (h *CourseHandler) GetChapters(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	courseID := c.MustGet("courseID").(uint)

	chapters, err := h.courseService.GetChapters(userID, courseID)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chapters": dto.NewChapterListResponse(chapters)})
}

// AddChaptersRequest представляет запрос на добавление глав
type AddChaptersRequest struct {
	Titles []string `json:"titles" binding:"required,min=1,dive,min=1,max=200"`
}

// AddChapters обрабатывает запрос на добавление глав к курсу
func (h *CourseHandler) AddChapters(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	courseID := c.MustGet("courseID").(uint)

	var req AddChaptersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chapters, err := h.courseService.AddChapters(userID, courseID, req.Titles)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"chapters": dto.NewChapterListResponse(chapters)})
}

// UploadQuestionsRequest представляет запрос на загрузку вопросов в главу
type UploadQuestionsRequest struct {
	Questions []struct {
		Type            string `json:"type" binding:"omitempty,max=20"`
		Text            string `json:"text" binding:"required,min=3,max=1000"`
		SuggestedAnswer string `json:"suggested_answer" binding:"omitempty,max=2000"`
	} `json:"questions" binding:"required,min=1,dive"`
}

// UploadQuestions обрабатывает пакетную загрузку вопросов
func (h *CourseHandler) UploadQuestions(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	chapterID := c.MustGet("chapterID").(uint)

	var req UploadQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	questions := make([]entity.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, entity.Question{
			ChapterID:       chapterID,
			Type:            q.Type,
			Text:            q.Text,
			SuggestedAnswer: q.SuggestedAnswer,
		})
	}

	if err := h.courseService.UploadQuestions(userID, chapterID, questions); err != nil {
		h.handleCourseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"uploaded": len(questions)})
}

// handleCourseError преобразует ошибки сервиса в HTTP-статусы
func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in CourseHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
