package quizgen

import "time"

// Константы политики отбора по умолчанию
const (
	// DefaultNewQuestionLimit — сколько максимум новых вопросов попадает в квиз
	DefaultNewQuestionLimit = 6

	// DefaultReviewQuestionLimit — сколько максимум вопросов на повторение попадает в квиз
	DefaultReviewQuestionLimit = 4

	// DefaultHistoryWindow — сколько последних результатов учитывается при поиске материала на повторение
	DefaultHistoryWindow = 5

	// DefaultHistoryLimit — сколько последних результатов возвращает история
	DefaultHistoryLimit = 20
)

// Config содержит настройки политики генерации квизов.
// Лимиты фиксированные (не пропорциональные): если пул меньше лимита,
// берётся весь пул, добор из другого пула не выполняется.
type Config struct {
	// NewQuestionLimit — максимум вопросов из запрошенных глав
	NewQuestionLimit int

	// ReviewQuestionLimit — максимум вопросов из глав на повторение
	ReviewQuestionLimit int

	// HistoryWindow — окно последних результатов для вычисления глав на повторение
	HistoryWindow int

	// HistoryLimit — размер списка истории результатов
	HistoryLimit int

	// ChapterCacheTTL — время жизни кеша списка глав курса
	ChapterCacheTTL time.Duration
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		NewQuestionLimit:    DefaultNewQuestionLimit,
		ReviewQuestionLimit: DefaultReviewQuestionLimit,
		HistoryWindow:       DefaultHistoryWindow,
		HistoryLimit:        DefaultHistoryLimit,
		ChapterCacheTTL:     10 * time.Minute,
	}
}
