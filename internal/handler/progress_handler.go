package handler

import (
	"errors"

	"lingua-progress/internal/domain"
	"lingua-progress/internal/dto"
	"lingua-progress/internal/logger"
	"lingua-progress/internal/middleware"
	"lingua-progress/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProgressHandler handles test progress HTTP requests
type ProgressHandler struct {
	service service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler instance
func NewProgressHandler(service service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// UpdateIsCorrect godoc
// @Summary Record a test outcome
// @Description Stores whether the user answered a test item correctly, rechecks completion of the linked content and promotes the user when every item of their level is completed.
// @Tags UserTestProgress
// @Accept json
// @Produce json
// @Param id path int true "Test progress ID"
// @Param type query int false "Content type: 1=article, 2=video, 3=audio"
// @Param request body dto.UpdateIsCorrectRequest true "Correctness flag"
// @Success 200 {object} dto.UpdateTestResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} dto.UpdateTestResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /UserTestProgress/UpdateIsCorrect/{id} [put]
func (h *ProgressHandler) UpdateIsCorrect(c *fiber.Ctx) error {
	progressID, _ := c.Locals(middleware.ValidatedProgressIDKey).(int64)
	contentType, _ := c.Locals(middleware.ValidatedContentTypeKey).(domain.ContentType)

	var req dto.UpdateIsCorrectRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("body", nil)}
	}

	resp, err := h.service.RecordCorrectness(c.UserContext(), progressID, req.IsCorrect, contentType)
	if err != nil {
		if errors.Is(err, domain.ErrTestProgressNotFound) {
			logger.Get().Info("Test progress not found", zap.Int64("progressID", progressID))
			return c.Status(fiber.StatusNotFound).JSON(dto.UpdateTestResponse{
				Success: false,
				Message: domain.TestProgressNotFoundMessage,
			})
		}
		logger.Get().Error("Failed to update test progress",
			zap.Int64("progressID", progressID),
			zap.Int("type", int(contentType)),
			zap.Error(err),
		)
		return err
	}

	return c.JSON(resp)
}
