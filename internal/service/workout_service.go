package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"swimset/swim-app/internal/domain"
	"swimset/swim-app/internal/repository"
	"swimset/swim-app/internal/swimdsl"
)

var (
	ErrWorkoutNotFound     = errors.New("workout not found")
	ErrWorkoutAccessDenied = errors.New("access denied to this workout")
	ErrValidationFailed    = errors.New("workout validation failed")
)

const (
	defaultInterpretCacheSize = 512
	untitledWorkout           = "Untitled workout"
)

type WorkoutService interface {
	Interpret(text string) *swimdsl.InterpretedWorkout
	CreateWorkout(ctx context.Context, coachID primitive.ObjectID, title, source string) (*domain.Workout, *swimdsl.InterpretedWorkout, error)
	GetWorkout(ctx context.Context, coachID, workoutID primitive.ObjectID) (*domain.Workout, *swimdsl.InterpretedWorkout, error)
	ListWorkouts(ctx context.Context, coachID primitive.ObjectID) ([]domain.Workout, error)
	UpdateWorkout(ctx context.Context, coachID, workoutID primitive.ObjectID, title, source string) (*domain.Workout, *swimdsl.InterpretedWorkout, error)
	DeleteWorkout(ctx context.Context, coachID, workoutID primitive.ObjectID) error
}

// workoutService implements WorkoutService. Interpretations are memoized by
// document hash; results are shared, so callers must not mutate them.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	cache       *lru.Cache[string, *swimdsl.InterpretedWorkout]
}

// NewWorkoutService creates a new WorkoutService with an interpretation cache of cacheSize entries.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, cacheSize int) (WorkoutService, error) {
	if cacheSize <= 0 {
		cacheSize = defaultInterpretCacheSize
	}
	cache, err := lru.New[string, *swimdsl.InterpretedWorkout](cacheSize)
	if err != nil {
		return nil, err
	}
	return &workoutService{
		workoutRepo: workoutRepo,
		cache:       cache,
	}, nil
}

// Interpret runs the shorthand interpreter, consulting the cache first.
func (s *workoutService) Interpret(text string) *swimdsl.InterpretedWorkout {
	sum := sha256.Sum256([]byte(text))
	key := hex.EncodeToString(sum[:])

	if w, ok := s.cache.Get(key); ok {
		return w
	}
	w := swimdsl.Interpret(text)
	s.cache.Add(key, w)
	return w
}

// CreateWorkout interprets and stores a new workout for the coach.
func (s *workoutService) CreateWorkout(ctx context.Context, coachID primitive.ObjectID, title, source string) (*domain.Workout, *swimdsl.InterpretedWorkout, error) {
	if coachID == primitive.NilObjectID {
		return nil, nil, errors.New("coach ID is required to create a workout")
	}
	if strings.TrimSpace(source) == "" {
		return nil, nil, ErrValidationFailed
	}

	interpreted := s.Interpret(source)
	workout := &domain.Workout{CoachID: coachID, Source: source}
	applyInterpretation(workout, title, interpreted)

	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, nil, err
	}
	workout.ID = id
	return workout, interpreted, nil
}

// GetWorkout loads a workout the coach owns and re-interprets its source.
func (s *workoutService) GetWorkout(ctx context.Context, coachID, workoutID primitive.ObjectID) (*domain.Workout, *swimdsl.InterpretedWorkout, error) {
	workout, err := s.ownedWorkout(ctx, coachID, workoutID)
	if err != nil {
		return nil, nil, err
	}
	return workout, s.Interpret(workout.Source), nil
}

// ListWorkouts retrieves the summaries of all workouts of a coach.
func (s *workoutService) ListWorkouts(ctx context.Context, coachID primitive.ObjectID) ([]domain.Workout, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID cannot be nil")
	}
	return s.workoutRepo.GetByCoachID(ctx, coachID)
}

// UpdateWorkout replaces the source of a workout and recomputes its summary.
func (s *workoutService) UpdateWorkout(ctx context.Context, coachID, workoutID primitive.ObjectID, title, source string) (*domain.Workout, *swimdsl.InterpretedWorkout, error) {
	if strings.TrimSpace(source) == "" {
		return nil, nil, ErrValidationFailed
	}
	workout, err := s.ownedWorkout(ctx, coachID, workoutID)
	if err != nil {
		return nil, nil, err
	}

	interpreted := s.Interpret(source)
	workout.Source = source
	applyInterpretation(workout, title, interpreted)

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrWorkoutNotFound
		}
		return nil, nil, err
	}
	return workout, interpreted, nil
}

// DeleteWorkout removes a workout the coach owns.
func (s *workoutService) DeleteWorkout(ctx context.Context, coachID, workoutID primitive.ObjectID) error {
	if _, err := s.ownedWorkout(ctx, coachID, workoutID); err != nil {
		return err
	}
	if err := s.workoutRepo.Delete(ctx, workoutID, coachID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

func (s *workoutService) ownedWorkout(ctx context.Context, coachID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	if coachID == primitive.NilObjectID || workoutID == primitive.NilObjectID {
		return nil, errors.New("coach ID and workout ID are required")
	}
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.CoachID != coachID {
		return nil, ErrWorkoutAccessDenied
	}
	return workout, nil
}

// applyInterpretation copies the summary fields storage keeps next to the source.
func applyInterpretation(workout *domain.Workout, title string, w *swimdsl.InterpretedWorkout) {
	title = strings.TrimSpace(title)
	if title == "" && w.Header.Title != nil {
		title = *w.Header.Title
	}
	if title == "" {
		title = untitledWorkout
	}
	workout.Title = title

	workout.PoolLengthMeters = w.Header.PoolLengthMeters
	workout.PlannedDurationMinutes = w.Header.PlannedDurationMinutes
	workout.Focus = ""
	if w.Header.Focus != nil {
		workout.Focus = *w.Header.Focus
	}
	workout.Profile = ""
	if w.Header.Profile != nil {
		workout.Profile = *w.Header.Profile
	}
	workout.TotalDistanceMeters = w.Totals.TotalDistanceMeters
	workout.EstimatedMinutes = w.Totals.EstimatedMinutes
	workout.ErrorCount = len(w.Errors)
}
