package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"healieve/health-app/internal/domain"
	"healieve/health-app/internal/repository"
	"healieve/health-app/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrValidationFailed     = errors.New("exercise validation failed")
	ErrMediaStorageDisabled = errors.New("media storage is not configured")
	ErrUploadURLError       = errors.New("failed to generate upload URL")
	ErrDownloadURLError     = errors.New("failed to generate download URL")
)

const mediaRefPrefix = "s3://"

// MediaUploadTicket carries a presigned PUT URL plus the reference the
// client should store on the exercise once the upload completes.
type MediaUploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
	Ref       string `json:"ref"` // s3:// form, consumable by report asset resolution
}

// ExerciseService manages the shared exercise library. Library entries are a
// convenience source for report requests; reports themselves always receive
// exercises wholesale from the caller. Media lives in the object store and is
// referenced from entries by s3:// keys.
type ExerciseService interface {
	CreateExercise(ctx context.Context, ownerID primitive.ObjectID, exercise domain.Exercise) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	DeleteExercise(ctx context.Context, ownerID, exerciseID primitive.ObjectID) error
	GenerateMediaUploadURL(ctx context.Context, ownerID primitive.ObjectID, contentType string) (*MediaUploadTicket, error)
	GetMediaDownloadURL(ctx context.Context, ref string) (string, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	fileStorage  storage.ObjectStore // may be nil when no bucket is configured
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, fileStorage storage.ObjectStore) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo, fileStorage: fileStorage}
}

// CreateExercise stores a library entry owned by the authenticated user.
func (s *exerciseService) CreateExercise(ctx context.Context, ownerID primitive.ObjectID, exercise domain.Exercise) (*domain.Exercise, error) {
	if exercise.Name == "" {
		return nil, ErrValidationFailed
	}
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID is required to create an exercise")
	}
	exercise.OwnerID = ownerID

	id, err := s.exerciseRepo.Create(ctx, &exercise)
	if err != nil {
		return nil, err
	}
	// Fetch again so DB-populated timestamps come back with the result.
	return s.exerciseRepo.GetByID(ctx, id)
}

func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// ListExercises returns the whole library. The library is shared; every
// authenticated user reads the same set.
func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// DeleteExercise removes a library entry, enforcing ownership at the
// repository filter level. Bucket-hosted media belonging to the entry is
// deleted best-effort once the record is gone.
func (s *exerciseService) DeleteExercise(ctx context.Context, ownerID, exerciseID primitive.ObjectID) error {
	if ownerID == primitive.NilObjectID || exerciseID == primitive.NilObjectID {
		return errors.New("owner ID and exercise ID are required")
	}
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	if err := s.exerciseRepo.Delete(ctx, exerciseID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	s.deleteStoredMedia(ctx, exercise)
	return nil
}

// GenerateMediaUploadURL presigns a PUT for a new media object under the
// owner's media prefix. The client uploads directly to the bucket and then
// stores the returned ref on the exercise.
func (s *exerciseService) GenerateMediaUploadURL(ctx context.Context, ownerID primitive.ObjectID, contentType string) (*MediaUploadTicket, error) {
	if s.fileStorage == nil {
		return nil, ErrMediaStorageDisabled
	}
	if ownerID == primitive.NilObjectID {
		return nil, errors.New("owner ID is required to upload media")
	}
	ct := strings.ToLower(contentType)
	if !strings.HasPrefix(ct, "image/") && !strings.HasPrefix(ct, "video/") {
		return nil, ErrValidationFailed
	}

	fileExtension := ""
	if parts := strings.Split(ct, "/"); len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("media", ownerID.Hex(), fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &MediaUploadTicket{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
		Ref:       mediaRefPrefix + objectKey,
	}, nil
}

// GetMediaDownloadURL presigns a GET for a stored media ref so clients can
// preview bucket-hosted media without going through a report render.
// Accepts either the s3:// form or a bare object key.
func (s *exerciseService) GetMediaDownloadURL(ctx context.Context, ref string) (string, error) {
	if s.fileStorage == nil {
		return "", ErrMediaStorageDisabled
	}
	objectKey := strings.TrimPrefix(ref, mediaRefPrefix)
	if objectKey == "" || strings.Contains(objectKey, "://") {
		return "", ErrValidationFailed
	}
	downloadURL, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrDownloadURLError
	}
	return downloadURL, nil
}

func (s *exerciseService) deleteStoredMedia(ctx context.Context, exercise *domain.Exercise) {
	if s.fileStorage == nil || exercise == nil {
		return
	}
	refs := []string{exercise.MainImage}
	for _, st := range exercise.Steps {
		refs = append(refs, st.Image)
	}
	for _, ref := range refs {
		if !strings.HasPrefix(ref, mediaRefPrefix) {
			continue
		}
		// Best effort: an orphaned object is preferable to a failed delete.
		_ = s.fileStorage.DeleteObject(ctx, strings.TrimPrefix(ref, mediaRefPrefix))
	}
}
