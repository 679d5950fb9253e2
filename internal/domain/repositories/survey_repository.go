package repositories

import (
	"context"

	"github.com/acamposr/event-surveys-api/internal/domain/entities"
)

// SurveyRepository abstrae el acceso de lectura/escritura a las encuestas
// de la plataforma. La implementación real habla con el backend REST; los
// tests usan un fake.
type SurveyRepository interface {
	GetSurveysByEvent(ctx context.Context, token string, eventID uint) ([]entities.Survey, error)
	GetSurveysByActivity(ctx context.Context, token string, activityID uint) ([]entities.Survey, error)
	CompleteSurvey(ctx context.Context, token string, surveyID uint, attendeeID string) error
	GetSurveyStatistics(ctx context.Context, token string, surveyID uint) (*entities.SurveyStatistics, error)
}
