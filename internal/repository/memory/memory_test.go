package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"swimset/swim-app/internal/domain"
	"swimset/swim-app/internal/repository"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	id, err := repo.Create(ctx, &domain.User{Name: "A", Email: "a@example.com", PasswordHash: "h", Role: domain.RoleCoach})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Name: "B", Email: "a@example.com", PasswordHash: "h", Role: domain.RoleSwimmer})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	got, err := repo.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = repo.GetByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWorkoutRepository_ScopedToCoach(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkoutRepository()
	coach := primitive.NewObjectID()

	w := &domain.Workout{CoachID: coach, Title: "T", Source: "200 FR"}
	id, err := repo.Create(ctx, w)
	require.NoError(t, err)

	w.Title = "Changed"
	w.CoachID = primitive.NewObjectID()
	assert.ErrorIs(t, repo.Update(ctx, w), repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, id, primitive.NewObjectID()), repository.ErrNotFound)

	list, err := repo.GetByCoachID(ctx, coach)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "T", list[0].Title)

	require.NoError(t, repo.Delete(ctx, id, coach))
	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExportRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewExportRepository()
	workout := primitive.NewObjectID()

	_, err := repo.Create(ctx, &domain.Export{WorkoutID: workout})
	assert.Error(t, err)

	id, err := repo.Create(ctx, &domain.Export{WorkoutID: workout, CoachID: primitive.NewObjectID(), S3ObjectKey: "k", View: domain.ViewCoach})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewCoach, got.View)

	list, err := repo.GetByWorkoutID(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, list)
}
