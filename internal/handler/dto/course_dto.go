package dto

import (
	"time"

	"github.com/yourusername/studyquiz-api/internal/domain/entity"
)

// CourseResponse представляет курс в формате для ответа клиенту
type CourseResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCourseResponse создает DTO для курса
func NewCourseResponse(course *entity.Course) *CourseResponse {
	if course == nil {
		return nil
	}
	return &CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		CreatedAt:   course.CreatedAt,
	}
}

// NewCourseListResponse создает список DTO курсов
func NewCourseListResponse(courses []entity.Course) []*CourseResponse {
	items := make([]*CourseResponse, len(courses))
	for i := range courses {
		items[i] = NewCourseResponse(&courses[i])
	}
	return items
}

// ChapterResponse представляет главу в формате для ответа клиенту
type ChapterResponse struct {
	ID         uint   `json:"id"`
	CourseID   uint   `json:"course_id"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index"`
}

// NewChapterListResponse создает список DTO глав
func NewChapterListResponse(chapters []entity.Chapter) []*ChapterResponse {
	items := make([]*ChapterResponse, len(chapters))
	for i := range chapters {
		items[i] = &ChapterResponse{
			ID:         chapters[i].ID,
			CourseID:   chapters[i].CourseID,
			Title:      chapters[i].Title,
			OrderIndex: chapters[i].OrderIndex,
		}
	}
	return items
}
