package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"healieve/health-app/internal/domain"
	"healieve/health-app/internal/service"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

type ExerciseStepDTO struct {
	Caption string `json:"caption" binding:"required"`
	Image   string `json:"image,omitempty"`
}

// CreateExerciseRequest defines the expected JSON for creating a library exercise.
type CreateExerciseRequest struct {
	Name        string            `json:"name" binding:"required"`
	Equipment   string            `json:"equipment" binding:"omitempty"`
	Difficulty  string            `json:"difficulty" binding:"omitempty"` // e.g., "Novice", "Medium", "Advanced"
	Reps        string            `json:"reps" binding:"omitempty"`
	Tempo       string            `json:"tempo" binding:"omitempty"`
	Rest        string            `json:"rest" binding:"omitempty"`
	Description string            `json:"description" binding:"omitempty"`
	Muscles     []string          `json:"muscles" binding:"omitempty"`
	MainImage   string            `json:"mainImage" binding:"omitempty"`
	DemoVideo   string            `json:"demoVideo" binding:"omitempty,url"` // Optional, validated as URL if provided
	Steps       []ExerciseStepDTO `json:"steps" binding:"omitempty,dive"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID          string            `json:"id"`
	OwnerID     string            `json:"ownerId"`
	Name        string            `json:"name"`
	Equipment   string            `json:"equipment,omitempty"`
	Difficulty  string            `json:"difficulty,omitempty"`
	Reps        string            `json:"reps,omitempty"`
	Tempo       string            `json:"tempo,omitempty"`
	Rest        string            `json:"rest,omitempty"`
	Description string            `json:"description,omitempty"`
	Muscles     []string          `json:"muscles,omitempty"`
	MainImage   string            `json:"mainImage,omitempty"`
	DemoVideo   string            `json:"demoVideo,omitempty"`
	Steps       []ExerciseStepDTO `json:"steps,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	resp := ExerciseResponse{
		ID:          ex.ID.Hex(),
		OwnerID:     ex.OwnerID.Hex(),
		Name:        ex.Name,
		Equipment:   ex.Equipment,
		Difficulty:  ex.Difficulty,
		Reps:        ex.Reps,
		Tempo:       ex.Tempo,
		Rest:        ex.Rest,
		Description: ex.Description,
		Muscles:     ex.Muscles,
		MainImage:   ex.MainImage,
		DemoVideo:   ex.DemoVideo,
		CreatedAt:   ex.CreatedAt,
		UpdatedAt:   ex.UpdatedAt,
	}
	for _, st := range ex.Steps {
		resp.Steps = append(resp.Steps, ExerciseStepDTO{Caption: st.Caption, Image: st.Image})
	}
	return resp
}

// MapExercisesToResponse converts a slice of domain.Exercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = MapExerciseToResponse(&ex)
	}
	return responses
}

// --- Handler Methods ---

// CreateExercise adds a new exercise to the shared library, owned by the
// authenticated user.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ownerIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	ownerID, err := primitive.ObjectIDFromHex(ownerIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return
	}

	exercise := domain.Exercise{
		Name:        req.Name,
		Equipment:   req.Equipment,
		Difficulty:  req.Difficulty,
		Reps:        req.Reps,
		Tempo:       req.Tempo,
		Rest:        req.Rest,
		Description: req.Description,
		Muscles:     req.Muscles,
		MainImage:   req.MainImage,
		DemoVideo:   req.DemoVideo,
	}
	for _, st := range req.Steps {
		exercise.Steps = append(exercise.Steps, domain.ExerciseStep{Caption: st.Caption, Image: st.Image})
	}

	created, err := h.exerciseService.CreateExercise(c.Request.Context(), ownerID, exercise)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise")
		}
		return
	}

	c.JSON(http.StatusCreated, MapExerciseToResponse(created))
}

// ListExercises returns the shared exercise library.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list exercises")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetExerciseByID returns a single library exercise.
func (h *ExerciseHandler) GetExerciseByID(c *gin.Context) {
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), exerciseID)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch exercise")
		}
		return
	}

	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// MediaUploadRequest asks for a presigned upload slot for exercise media.
type MediaUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// RequestMediaUpload presigns a direct-to-bucket PUT for exercise media and
// returns the s3:// ref to store on the exercise afterwards.
func (h *ExerciseHandler) RequestMediaUpload(c *gin.Context) {
	var req MediaUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ownerIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	ownerID, err := primitive.ObjectIDFromHex(ownerIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return
	}

	ticket, err := h.exerciseService.GenerateMediaUploadURL(c.Request.Context(), ownerID, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrMediaStorageDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Content type must be image/* or video/*.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL")
		}
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// GetMediaDownloadURL presigns a GET for a stored media ref ("ref" query
// parameter, s3:// form or bare object key).
func (h *ExerciseHandler) GetMediaDownloadURL(c *gin.Context) {
	ref := c.Query("ref")
	if ref == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'ref' is required.")
		return
	}

	downloadURL, err := h.exerciseService.GetMediaDownloadURL(c.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, service.ErrMediaStorageDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "Ref must be an s3:// reference or object key.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate download URL")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"downloadUrl": downloadURL})
}

// DeleteExercise removes an exercise the authenticated user owns.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	exerciseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise ID format.")
		return
	}

	ownerIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	ownerID, err := primitive.ObjectIDFromHex(ownerIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), ownerID, exerciseID); err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
