package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerRecordArray_CountCorrect(t *testing.T) {
	// Arrange
	answers := AnswerRecordArray{
		{QuestionID: 1, ChapterID: 10, IsCorrect: true},
		{QuestionID: 2, ChapterID: 10, IsCorrect: false},
		{QuestionID: 3, ChapterID: 11, IsCorrect: true},
	}

	// Act & Assert
	assert.Equal(t, 2, answers.CountCorrect(), "Должно быть 2 правильных ответа")
	assert.Equal(t, 0, AnswerRecordArray{}.CountCorrect(), "Пустой список даёт 0")
}

func TestAnswerRecordArray_ContainsReview(t *testing.T) {
	// Arrange
	withReview := AnswerRecordArray{
		{QuestionID: 1, ChapterID: 10, IsReview: false},
		{QuestionID: 2, ChapterID: 12, IsReview: true},
	}
	withoutReview := AnswerRecordArray{
		{QuestionID: 1, ChapterID: 10, IsReview: false},
	}

	// Act & Assert
	assert.True(t, withReview.ContainsReview(), "Должен обнаруживаться хотя бы один повторяемый ответ")
	assert.False(t, withoutReview.ContainsReview())
	assert.False(t, AnswerRecordArray{}.ContainsReview())
}

func TestAnswerRecordArray_ChapterIDs(t *testing.T) {
	// Arrange: главы могут повторяться, дедупликация происходит выше
	answers := AnswerRecordArray{
		{QuestionID: 1, ChapterID: 10},
		{QuestionID: 2, ChapterID: 11},
		{QuestionID: 3, ChapterID: 10},
	}

	// Act & Assert
	assert.Equal(t, []uint{10, 11, 10}, answers.ChapterIDs())
}

func TestAnswerRecordArray_Value_Empty(t *testing.T) {
	// Тест: пустой список сериализуется как JSON-массив, а не NULL
	value, err := AnswerRecordArray{}.Value()

	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestAnswerRecordArray_Scan_RoundTrip(t *testing.T) {
	// Arrange
	original := AnswerRecordArray{
		{QuestionID: 1, ChapterID: 10, UserAnswer: "ответ", IsCorrect: true, IsReview: true},
	}

	value, err := original.Value()
	require.NoError(t, err)

	// Act
	var scanned AnswerRecordArray
	err = scanned.Scan(value)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, original, scanned)
}

func TestAnswerRecordArray_Scan_Nil(t *testing.T) {
	// Act
	var answers AnswerRecordArray
	err := answers.Scan(nil)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, answers)
	assert.NotNil(t, answers, "NULL в базе должен давать пустой срез")
}

func TestUintArray_Contains(t *testing.T) {
	// Arrange
	chapters := UintArray{10, 11, 12}

	// Act & Assert
	assert.True(t, chapters.Contains(11))
	assert.False(t, chapters.Contains(99))
	assert.False(t, UintArray{}.Contains(10))
}

func TestUintArray_Value_Empty(t *testing.T) {
	// Тест: пустой список глав сериализуется как пустой JSON-массив
	value, err := UintArray{}.Value()

	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}
