package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/georgemunganga/productions-api/internal/apperr"
)

func TestService_RegisterAndExists(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	u, err := svc.RegisterUser(ctx, RegisterRequest{Email: " Ana@Example.com ", Password: "pw", FirstName: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")))

	ok, err := svc.Exists(ctx, u.ID.String())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Exists(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_RegisterErrors(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, RegisterRequest{Email: "a@b.c"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.RegisterUser(ctx, RegisterRequest{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)
	_, err = svc.RegisterUser(ctx, RegisterRequest{Email: "A@b.c", Password: "y"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestHandler_RegisterAndGet(t *testing.T) {
	router := chi.NewRouter()
	NewHandler(NewService(NewMemoryRepository())).RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users/register",
		strings.NewReader(`{"email":"ana@example.com","password":"pw"}`)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")

	var created User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/"+created.ID.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
