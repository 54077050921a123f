package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(ErrTaskNotFound))
	assert.Equal(t, http.StatusNotFound, StatusCode(fmt.Errorf("lookup: %w", ErrListNotFound)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(fmt.Errorf("disk full")))
}

func TestKindHelpers(t *testing.T) {
	validation := NewValidation(map[string]string{
		"name": "The name field is required.",
	}, []string{"name"})

	assert.True(t, IsValidation(validation))
	assert.True(t, IsNotFound(ErrListNotFound))
	assert.True(t, IsReference(ErrInvalidListReference))
	assert.False(t, IsNotFound(ErrInvalidListReference))
	assert.False(t, IsUserFacing(fmt.Errorf("boom")))
	assert.True(t, IsUserFacing(fmt.Errorf("wrapped: %w", validation)))
}

func TestNewValidation_FirstFieldWins(t *testing.T) {
	err := NewValidation(map[string]string{
		"title":   "The title field is required.",
		"list_id": "The list id field is required.",
	}, []string{"title", "list_id"})

	assert.Equal(t, "The title field is required.", err.Error())
	assert.Len(t, err.Fields, 2)
}
