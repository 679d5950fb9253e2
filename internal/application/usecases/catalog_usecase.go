package usecases

import (
	"context"
	"errors"

	"github.com/acamposr/event-surveys-api/internal/domain/entities"
	"github.com/acamposr/event-surveys-api/internal/domain/repositories"
)

var (
	// ErrEventRequired: sin evento no hay fetch posible; es un error del
	// llamador, no una falla recuperable
	ErrEventRequired = errors.New("event_id es obligatorio para listar encuestas")

	// ErrInvalidSurveyType se devuelve cuando el filtro trae un tipo
	// fuera de los cuatro soportados
	ErrInvalidSurveyType = errors.New("tipo de encuesta no soportado")
)

// CatalogFilter es la selección del usuario: evento obligatorio,
// actividad y tipo opcionales
type CatalogFilter struct {
	EventID    uint
	ActivityID *uint
	Type       entities.SurveyType // vacío = todas
}

type CatalogUseCase interface {
	FilterSurveys(ctx context.Context, token string, filter CatalogFilter) ([]entities.Survey, error)
	GetSurveysByActivity(ctx context.Context, token string, activityID uint) ([]entities.Survey, error)
}

type catalogUseCase struct {
	surveyRepo repositories.SurveyRepository
}

func NewCatalogUseCase(surveyRepo repositories.SurveyRepository) CatalogUseCase {
	return &catalogUseCase{surveyRepo}
}

// FilterSurveys trae las encuestas del evento y aplica el predicado de
// filtrado en este orden de precedencia:
//  1. tipo satisfacción: tipo + evento + sin actividad (la actividad
//     seleccionada se ignora: una encuesta de satisfacción es de evento)
//  2. tipo no-satisfacción: tipo, y actividad si hay una seleccionada
//  3. solo actividad
//  4. sin filtro: todas las del evento
//
// El orden de salida es el que entrega el backend; no se reordena.
func (uc *catalogUseCase) FilterSurveys(ctx context.Context, token string, filter CatalogFilter) ([]entities.Survey, error) {
	if filter.EventID == 0 {
		return nil, ErrEventRequired
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, ErrInvalidSurveyType
	}

	surveys, err := uc.surveyRepo.GetSurveysByEvent(ctx, token, filter.EventID)
	if err != nil {
		return nil, err
	}

	filtered := make([]entities.Survey, 0, len(surveys))
	for _, s := range surveys {
		if matchesFilter(&s, filter) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func matchesFilter(s *entities.Survey, filter CatalogFilter) bool {
	switch {
	case filter.Type == entities.SurveyTypeEventSatisfaction:
		return s.Type == filter.Type && s.EventID == filter.EventID && s.ActivityID == nil
	case filter.Type != "":
		if s.Type != filter.Type {
			return false
		}
		if filter.ActivityID != nil {
			return s.ActivityID != nil && *s.ActivityID == *filter.ActivityID
		}
		return true
	case filter.ActivityID != nil:
		return s.ActivityID != nil && *s.ActivityID == *filter.ActivityID
	default:
		return true
	}
}

// GetSurveysByActivity es la variante de la vista de ponentes: lista
// directamente por actividad, sin filtro adicional
func (uc *catalogUseCase) GetSurveysByActivity(ctx context.Context, token string, activityID uint) ([]entities.Survey, error) {
	if activityID == 0 {
		return nil, errors.New("activity_id es obligatorio")
	}
	return uc.surveyRepo.GetSurveysByActivity(ctx, token, activityID)
}
