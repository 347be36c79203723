package quizgen

import (
	"math/rand"
	"time"
)

// Shuffler абстрагирует источник случайности для перемешивания вопросов.
// В продакшене используется math/rand, в тестах подставляется
// детерминированная реализация для точной проверки лимитов и смешивания.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type randShuffler struct {
	rng *rand.Rand
}

// NewTimeSeededShuffler создает Shuffler на основе math/rand с сидом от времени
func NewTimeSeededShuffler() Shuffler {
	return &randShuffler{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *randShuffler) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}
