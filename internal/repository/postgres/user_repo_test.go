package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation_PgconnError(t *testing.T) {
	// Arrange: ошибка драйвера pgx/v5, в том числе обернутая
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}
	wrapped := fmt.Errorf("create user: %w", pgErr)

	// Act & Assert
	assert.True(t, isUniqueViolation(pgErr), "Код 23505 от pgconn должен распознаваться")
	assert.True(t, isUniqueViolation(wrapped), "Обернутая ошибка 23505 должна распознаваться")
}

func TestIsUniqueViolation_PqError(t *testing.T) {
	// Arrange: ошибка драйвера lib/pq
	pqErr := &pq.Error{Code: "23505"}

	// Act & Assert
	assert.True(t, isUniqueViolation(pqErr), "Код 23505 от lib/pq должен распознаваться")
}

func TestIsUniqueViolation_OtherErrors(t *testing.T) {
	// Act & Assert: другие коды и обычные ошибки не считаются нарушением уникальности
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}), "Foreign key violation не является unique violation")
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}
