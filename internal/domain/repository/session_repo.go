package repository

import (
	"github.com/yourusername/studyquiz-api/internal/domain/entity"
)

// SessionRepository определяет методы для работы с учебными сессиями
type SessionRepository interface {
	Create(session *entity.StudySession) error
	GetByID(id uint) (*entity.StudySession, error)
}
