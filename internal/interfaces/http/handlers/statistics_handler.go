package handlers

import (
	"github.com/acamposr/event-surveys-api/internal/application/usecases"
	"github.com/acamposr/event-surveys-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// StatisticsHandler expone los agregados por encuesta para los reportes
// del organizador
type StatisticsHandler struct {
	statisticsUseCase usecases.StatisticsUseCase
}

func NewStatisticsHandler(statisticsUseCase usecases.StatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{statisticsUseCase}
}

func (h *StatisticsHandler) GetSurveyStatistics(c *fiber.Ctx) error {
	surveyID, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	stats, err := h.statisticsUseCase.GetSurveyStatistics(c.UserContext(), middleware.AccessToken(c), surveyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
