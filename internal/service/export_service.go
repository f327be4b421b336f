package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"swimset/swim-app/internal/domain"
	"swimset/swim-app/internal/repository"
	"swimset/swim-app/internal/sheet"
	"swimset/swim-app/internal/storage"
)

var (
	ErrExportNotFound = errors.New("export not found")
	ErrExportFailed   = errors.New("failed to store workout sheet")
	ErrInvalidView    = errors.New("view must be coach or swimmer")
)

// ExportURL pairs export metadata with a temporary download link.
type ExportURL struct {
	Export      *domain.Export
	DownloadURL string
	ExpiresAt   time.Time
}

type ExportService interface {
	CreateExport(ctx context.Context, coachID, workoutID primitive.ObjectID, view domain.SheetView) (*ExportURL, error)
	GetExportURL(ctx context.Context, coachID, exportID primitive.ObjectID) (*ExportURL, error)
	ListExports(ctx context.Context, coachID, workoutID primitive.ObjectID) ([]domain.Export, error)
}

type exportService struct {
	workouts    WorkoutService
	exportRepo  repository.ExportRepository
	fileStorage storage.FileStorage
	urlExpiry   time.Duration
}

// NewExportService creates an ExportService storing sheets in fileStorage.
func NewExportService(workouts WorkoutService, exportRepo repository.ExportRepository, fileStorage storage.FileStorage, urlExpiry time.Duration) ExportService {
	if urlExpiry <= 0 {
		urlExpiry = storage.DefaultPresignedURLExpiry
	}
	return &exportService{
		workouts:    workouts,
		exportRepo:  exportRepo,
		fileStorage: fileStorage,
		urlExpiry:   urlExpiry,
	}
}

// CreateExport renders the workout sheet for view, uploads it and records it.
func (s *exportService) CreateExport(ctx context.Context, coachID, workoutID primitive.ObjectID, view domain.SheetView) (*ExportURL, error) {
	if view != domain.ViewCoach && view != domain.ViewSwimmer {
		return nil, ErrInvalidView
	}

	workout, interpreted, err := s.workouts.GetWorkout(ctx, coachID, workoutID)
	if err != nil {
		return nil, err
	}

	body := sheet.Render(workout.Title, interpreted, view)
	objectKey := path.Join("exports", coachID.Hex(), workoutID.Hex(), fmt.Sprintf("%s-%s.txt", view, uuid.NewString()))

	if err := s.fileStorage.PutObject(ctx, objectKey, sheet.ContentType, body); err != nil {
		log.Printf("ERROR: Failed to upload sheet %s for workout %s: %v", objectKey, workoutID.Hex(), err)
		return nil, ErrExportFailed
	}

	export := &domain.Export{
		WorkoutID:   workoutID,
		CoachID:     coachID,
		View:        view,
		S3ObjectKey: objectKey,
		ContentType: sheet.ContentType,
		Size:        int64(len(body)),
	}
	id, err := s.exportRepo.Create(ctx, export)
	if err != nil {
		// Don't leave an orphaned object behind.
		if delErr := s.fileStorage.DeleteObject(ctx, objectKey); delErr != nil {
			log.Printf("WARN: Failed to clean up sheet %s after metadata error: %v", objectKey, delErr)
		}
		return nil, err
	}
	export.ID = id

	return s.signedURL(ctx, export)
}

// GetExportURL issues a fresh download link for an export the coach owns.
func (s *exportService) GetExportURL(ctx context.Context, coachID, exportID primitive.ObjectID) (*ExportURL, error) {
	export, err := s.exportRepo.GetByID(ctx, exportID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExportNotFound
		}
		return nil, err
	}
	if export.CoachID != coachID {
		return nil, ErrWorkoutAccessDenied
	}
	return s.signedURL(ctx, export)
}

// ListExports lists the sheets rendered for a workout the coach owns.
func (s *exportService) ListExports(ctx context.Context, coachID, workoutID primitive.ObjectID) ([]domain.Export, error) {
	if _, _, err := s.workouts.GetWorkout(ctx, coachID, workoutID); err != nil {
		return nil, err
	}
	return s.exportRepo.GetByWorkoutID(ctx, workoutID)
}

func (s *exportService) signedURL(ctx context.Context, export *domain.Export) (*ExportURL, error) {
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, export.S3ObjectKey, s.urlExpiry)
	if err != nil {
		log.Printf("ERROR: Failed to presign download URL for %s: %v", export.S3ObjectKey, err)
		return nil, ErrExportFailed
	}
	return &ExportURL{
		Export:      export,
		DownloadURL: url,
		ExpiresAt:   time.Now().Add(s.urlExpiry).UTC(),
	}, nil
}
