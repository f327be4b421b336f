package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"swimset/swim-app/internal/domain"
	"swimset/swim-app/internal/repository/memory"
)

const testSecret = "test-secret"

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(memory.NewUserRepository(), testSecret, time.Hour)

	user, err := svc.Register(ctx, "Pat", " Coach@Example.com ", "longpassword", domain.RoleCoach)
	require.NoError(t, err)
	assert.Equal(t, "coach@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	token, loggedIn, err := svc.Login(ctx, "coach@example.com", "longpassword")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, domain.RoleCoach, claims.Role)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(memory.NewUserRepository(), testSecret, time.Hour)

	_, err := svc.Register(ctx, "Pat", "pat@example.com", "longpassword", domain.RoleCoach)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Pat Again", "PAT@example.com", "otherpassword", domain.RoleSwimmer)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_LoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(memory.NewUserRepository(), testSecret, time.Hour)
	_, err := svc.Register(ctx, "Sam", "sam@example.com", "longpassword", domain.RoleSwimmer)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "sam@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "nobody@example.com", "longpassword")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "", "")
	assert.Error(t, err)
}

func TestNewAuthService_PanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() {
		NewAuthService(memory.NewUserRepository(), "", time.Hour)
	})
}

func TestAuthService_GetUserAndRoles(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(memory.NewUserRepository(), testSecret, time.Hour)

	_, err := svc.Register(ctx, "Lee", "lee@example.com", "longpassword", domain.Role("parent"))
	assert.ErrorIs(t, err, ErrInvalidRole)

	user, err := svc.Register(ctx, "Lee", "lee@example.com", "longpassword", domain.RoleSwimmer)
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "lee@example.com", got.Email)
	assert.Empty(t, got.PasswordHash)
	assert.False(t, got.IsCoach())

	_, err = svc.GetUser(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
