package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// UintArray - пользовательский тип для хранения списка идентификаторов в JSONB
type UintArray []uint

// Scan реализует интерфейс sql.Scanner для UintArray
// Используется GORM для чтения JSONB данных из базы
func (a *UintArray) Scan(value interface{}) error {
	if value == nil {
		*a = UintArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	if len(bytes) == 0 {
		*a = UintArray{}
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Value реализует интерфейс driver.Valuer для UintArray
// Используется GORM для записи UintArray в JSONB в базе
func (a UintArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(a)
}

// Contains проверяет наличие идентификатора в списке
func (a UintArray) Contains(id uint) bool {
	for _, v := range a {
		if v == id {
			return true
		}
	}
	return false
}

// StudySession представляет одно событие генерации квиза.
// Создаётся ровно один раз на вызов генерации и далее не изменяется.
type StudySession struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	ChaptersCovered UintArray `gorm:"type:jsonb;not null" json:"chapters_covered"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (StudySession) TableName() string {
	return "study_sessions"
}
