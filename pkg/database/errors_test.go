package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUniqueViolation(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantOK         bool
		wantConstraint string
	}{
		{"pq error", &pq.Error{Code: "23505", Constraint: "uq_sellers_email"}, true, "uq_sellers_email"},
		{"wrapped pq error", fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: "uq_companies_owner_ref"}), true, "uq_companies_owner_ref"},
		{"translated", gorm.ErrDuplicatedKey, true, ""},
		{"sqlite", errors.New("UNIQUE constraint failed: sellers.email"), true, "sellers.email"},
		{"other pq error", &pq.Error{Code: "23503"}, false, ""},
		{"nil", nil, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			constraint, ok := UniqueViolation(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantConstraint, constraint)
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, IsForeignKeyViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, IsForeignKeyViolation(errors.New("timeout")))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("find: %w", gorm.ErrRecordNotFound)))
	assert.False(t, IsNotFound(errors.New("other")))
}
