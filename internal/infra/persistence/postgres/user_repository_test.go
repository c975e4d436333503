package postgres

import (
	"testing"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSearchColumnsCoverSearchableFields(t *testing.T) {
	for _, field := range []string{
		repository.FieldID,
		repository.FieldEmail,
		repository.FieldHashedPassword,
		repository.FieldSessionID,
		repository.FieldResetToken,
	} {
		assert.True(t, repository.IsSearchableField(field))
		assert.Contains(t, searchColumns, field)
	}
	assert.NotContains(t, searchColumns, "created_at")
}

func TestUserMapping(t *testing.T) {
	sessionID := "sid"
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com", HashedPassword: "hash", SessionID: &sessionID}

	back := toUserDomain(fromUserDomain(user))

	assert.Equal(t, user, back)
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}
