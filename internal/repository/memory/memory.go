// Package memory provides in-process implementations of the repository
// interfaces, used for local runs without MongoDB and in tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"swimset/swim-app/internal/domain"
	"swimset/swim-app/internal/repository"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]domain.User
}

// NewUserRepository creates an empty in-memory repository.UserRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{users: make(map[primitive.ObjectID]domain.User)}
}

func (r *userRepository) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Email == "" || user.PasswordHash == "" || user.Role == "" {
		return primitive.NilObjectID, errors.New("user email, password hash, and role are required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return user.ID, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

type workoutRepository struct {
	mu       sync.RWMutex
	workouts map[primitive.ObjectID]domain.Workout
}

// NewWorkoutRepository creates an empty in-memory repository.WorkoutRepository.
func NewWorkoutRepository() repository.WorkoutRepository {
	return &workoutRepository{workouts: make(map[primitive.ObjectID]domain.Workout)}
}

func (r *workoutRepository) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.CoachID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("workout requires coachId")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	workout.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	workout.CreatedAt = now
	workout.UpdatedAt = now
	r.workouts[workout.ID] = *workout
	return workout.ID, nil
}

func (r *workoutRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (r *workoutRepository) GetByCoachID(_ context.Context, coachID primitive.ObjectID) ([]domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workouts := []domain.Workout{}
	for _, w := range r.workouts {
		if w.CoachID == coachID {
			w.Source = ""
			workouts = append(workouts, w)
		}
	}
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].CreatedAt.After(workouts[j].CreatedAt)
	})
	return workouts, nil
}

func (r *workoutRepository) Update(_ context.Context, workout *domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.workouts[workout.ID]
	if !ok || existing.CoachID != workout.CoachID {
		return repository.ErrNotFound
	}
	workout.CreatedAt = existing.CreatedAt
	workout.UpdatedAt = time.Now().UTC()
	r.workouts[workout.ID] = *workout
	return nil
}

func (r *workoutRepository) Delete(_ context.Context, id, coachID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.workouts[id]
	if !ok || w.CoachID != coachID {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

type exportRepository struct {
	mu      sync.RWMutex
	exports map[primitive.ObjectID]domain.Export
}

// NewExportRepository creates an empty in-memory repository.ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &exportRepository{exports: make(map[primitive.ObjectID]domain.Export)}
}

func (r *exportRepository) Create(_ context.Context, export *domain.Export) (primitive.ObjectID, error) {
	if export.WorkoutID == primitive.NilObjectID || export.CoachID == primitive.NilObjectID || export.S3ObjectKey == "" {
		return primitive.NilObjectID, errors.New("export requires workoutId, coachId, and s3ObjectKey")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	export.ID = primitive.NewObjectID()
	export.CreatedAt = time.Now().UTC()
	r.exports[export.ID] = *export
	return export.ID, nil
}

func (r *exportRepository) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Export, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.exports[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *exportRepository) GetByWorkoutID(_ context.Context, workoutID primitive.ObjectID) ([]domain.Export, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exports := []domain.Export{}
	for _, e := range r.exports {
		if e.WorkoutID == workoutID {
			exports = append(exports, e)
		}
	}
	sort.Slice(exports, func(i, j int) bool {
		return exports[i].CreatedAt.After(exports[j].CreatedAt)
	})
	return exports, nil
}
