package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"swimset/swim-app/internal/repository/memory"
)

const threshDoc = `pool 25
duration 40
title Tuesday
main:
  10x100 FR @1:30 thresh
  5x200 FR @3:00 thresh
`

func newTestWorkoutService(t *testing.T) WorkoutService {
	t.Helper()
	svc, err := NewWorkoutService(memory.NewWorkoutRepository(), 4)
	require.NoError(t, err)
	return svc
}

func TestWorkoutService_InterpretIsCached(t *testing.T) {
	svc := newTestWorkoutService(t)

	first := svc.Interpret(threshDoc)
	second := svc.Interpret(threshDoc)
	assert.Same(t, first, second)
	assert.Equal(t, 2000, first.Totals.TotalDistanceMeters)

	other := svc.Interpret("4x50 FR @1:00")
	assert.NotSame(t, first, other)
}

func TestWorkoutService_CreateGetUpdateDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestWorkoutService(t)
	coach := primitive.NewObjectID()

	created, interpreted, err := svc.CreateWorkout(ctx, coach, "", threshDoc)
	require.NoError(t, err)
	assert.Equal(t, "Tuesday", created.Title)
	assert.Equal(t, 2000, created.TotalDistanceMeters)
	require.NotNil(t, created.PoolLengthMeters)
	assert.Equal(t, 25, *created.PoolLengthMeters)
	require.NotNil(t, created.EstimatedMinutes)
	assert.InDelta(t, 30.0, *created.EstimatedMinutes, 1e-9)
	assert.Zero(t, created.ErrorCount)
	assert.Empty(t, interpreted.Errors)

	got, gotInterp, err := svc.GetWorkout(ctx, coach, created.ID)
	require.NoError(t, err)
	assert.Equal(t, threshDoc, got.Source)
	assert.Len(t, gotInterp.Sets, 2)

	list, err := svc.ListWorkouts(ctx, coach)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Source)

	updated, _, err := svc.UpdateWorkout(ctx, coach, created.ID, "Renamed", "400 FR easy\nnonsense line here now")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, 400, updated.TotalDistanceMeters)
	assert.Equal(t, 1, updated.ErrorCount)
	assert.Nil(t, updated.PoolLengthMeters)

	require.NoError(t, svc.DeleteWorkout(ctx, coach, created.ID))
	_, _, err = svc.GetWorkout(ctx, coach, created.ID)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestWorkoutService_Ownership(t *testing.T) {
	ctx := context.Background()
	svc := newTestWorkoutService(t)
	owner := primitive.NewObjectID()
	intruder := primitive.NewObjectID()

	w, _, err := svc.CreateWorkout(ctx, owner, "Mine", threshDoc)
	require.NoError(t, err)

	_, _, err = svc.GetWorkout(ctx, intruder, w.ID)
	assert.ErrorIs(t, err, ErrWorkoutAccessDenied)
	_, _, err = svc.UpdateWorkout(ctx, intruder, w.ID, "", "200 FR")
	assert.ErrorIs(t, err, ErrWorkoutAccessDenied)
	assert.ErrorIs(t, svc.DeleteWorkout(ctx, intruder, w.ID), ErrWorkoutAccessDenied)
}

func TestWorkoutService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newTestWorkoutService(t)

	_, _, err := svc.CreateWorkout(ctx, primitive.NewObjectID(), "Empty", "  \n ")
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, _, err = svc.CreateWorkout(ctx, primitive.NilObjectID, "", threshDoc)
	assert.Error(t, err)

	w, _, err := svc.CreateWorkout(ctx, primitive.NewObjectID(), "", "200 FR")
	require.NoError(t, err)
	assert.Equal(t, untitledWorkout, w.Title)
}
