package service

import (
	"context"
	"log"

	"swimset/swim-app/internal/generator"
	"swimset/swim-app/internal/swimdsl"
)

// ErrInvalidConstraints is returned for constraints the generator cannot work with.
var ErrInvalidConstraints = generator.ErrInvalidConstraints

// GeneratedWorkout is generated shorthand together with its interpretation.
type GeneratedWorkout struct {
	Text    string
	Workout *swimdsl.InterpretedWorkout
}

type GeneratorService interface {
	Generate(ctx context.Context, c generator.Constraints) (*GeneratedWorkout, error)
}

type generatorService struct {
	workouts WorkoutService
}

// NewGeneratorService creates a GeneratorService that interprets its own output
// through workouts, so callers get totals without a second request.
func NewGeneratorService(workouts WorkoutService) GeneratorService {
	return &generatorService{workouts: workouts}
}

// Generate builds shorthand for c and interprets it back.
func (s *generatorService) Generate(ctx context.Context, c generator.Constraints) (*GeneratedWorkout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := generator.Generate(c)
	if err != nil {
		return nil, err
	}

	interpreted := s.workouts.Interpret(text)
	if interpreted.HasErrors() {
		// Generated text must always parse; this points at a catalog bug.
		log.Printf("ERROR: Generated workout for focus=%s profile=%s has %d parse errors", c.Focus, c.Profile, len(interpreted.Errors))
	}

	return &GeneratedWorkout{Text: text, Workout: interpreted}, nil
}
