package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"
	infraauth "authgate/internal/infra/auth"
	mockRepo "authgate/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func basicRequest(email, password string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	r.Header.Set(HeaderAuthorization, "Basic "+base64.StdEncoding.EncodeToString([]byte(email+":"+password)))

	return r
}

func newBasicFixture(t *testing.T) (*BasicAuth, *mockRepo.MockUserRepository, *entity.User) {
	t.Helper()

	hasher := infraauth.NewBcryptHasherWithCost(bcrypt.MinCost)
	hashed, err := hasher.Hash("secret:with:colons")
	require.NoError(t, err)

	users := mockRepo.NewMockUserRepository(t)
	user := &entity.User{ID: uuid.New(), Email: "bob@example.com", HashedPassword: hashed}

	return NewBasicAuth([]string{"/api/v1/status/"}, users, hasher, newDiscardLogger()), users, user
}

func TestBasicAuth_CurrentUser(t *testing.T) {
	strategy, users, user := newBasicFixture(t)
	users.EXPECT().Search(mock.Anything, repository.FieldEmail, "bob@example.com").Return([]*entity.User{user}, nil)

	got, err := strategy.CurrentUser(basicRequest("bob@example.com", "secret:with:colons"))

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestBasicAuth_WrongPassword(t *testing.T) {
	strategy, users, user := newBasicFixture(t)
	users.EXPECT().Search(mock.Anything, repository.FieldEmail, "bob@example.com").Return([]*entity.User{user}, nil)

	got, err := strategy.CurrentUser(basicRequest("bob@example.com", "wrong"))

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBasicAuth_UnknownUser(t *testing.T) {
	strategy, users, _ := newBasicFixture(t)
	users.EXPECT().Search(mock.Anything, repository.FieldEmail, "ghost@example.com").Return([]*entity.User{}, nil)

	got, err := strategy.CurrentUser(basicRequest("ghost@example.com", "secret"))

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBasicAuth_LookupFailureIsNoUser(t *testing.T) {
	strategy, users, _ := newBasicFixture(t)
	users.EXPECT().Search(mock.Anything, repository.FieldEmail, "bob@example.com").Return(nil, errors.New("boom"))

	got, err := strategy.CurrentUser(basicRequest("bob@example.com", "secret"))

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBasicAuth_MalformedHeaders(t *testing.T) {
	strategy, _, _ := newBasicFixture(t)

	for _, header := range []string{"Bearer xyz", "Basic !!!", "Basic " + base64.StdEncoding.EncodeToString([]byte("nocolon")), "Basic " + base64.StdEncoding.EncodeToString([]byte(":pw"))} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(HeaderAuthorization, header)

		assert.True(t, strategy.HasCredentials(r))
		got, err := strategy.CurrentUser(r)
		require.NoError(t, err)
		assert.Nil(t, got, header)
	}
}

func TestBasicAuth_FirstMatchWins(t *testing.T) {
	strategy, users, user := newBasicFixture(t)
	other := &entity.User{ID: uuid.New(), Email: user.Email, HashedPassword: "not-a-hash"}
	users.EXPECT().Search(mock.Anything, repository.FieldEmail, user.Email).Return([]*entity.User{other, user}, nil)

	got := strategy.UserFromCredentials(context.Background(), user.Email, "secret:with:colons")

	assert.Nil(t, got)
}

func TestBasicAuth_Metadata(t *testing.T) {
	strategy, _, _ := newBasicFixture(t)

	assert.Equal(t, "basic", strategy.Name())
	assert.False(t, strategy.RequiresAuth("/api/v1/status"))
	assert.True(t, strategy.RequiresAuth("/api/v1/users/me"))
	assert.False(t, strategy.HasCredentials(httptest.NewRequest(http.MethodGet, "/", nil)))
}
