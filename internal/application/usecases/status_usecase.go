package usecases

import (
	"fmt"
	"time"

	"github.com/acamposr/event-surveys-api/internal/domain/entities"
	"github.com/acamposr/event-surveys-api/internal/domain/repositories"
)

// StatusUseCase calcula el estado efectivo por usuario de cada encuesta,
// reconciliando las respuestas del backend con el almacén de overrides
type StatusUseCase interface {
	ResolveStatus(survey *entities.Survey, attendeeID string) entities.AttendeeStatus
	Annotate(surveys []entities.Survey, attendeeID string, now time.Time) []entities.AnnotatedSurvey
}

type statusUseCase struct {
	overrides repositories.OverrideRepository
}

func NewStatusUseCase(overrides repositories.OverrideRepository) StatusUseCase {
	return &statusUseCase{overrides}
}

// ResolveStatus evalúa la precedencia exacta:
//  1. sin identidad resuelta: not_sent (limitación documentada, no error)
//  2. override local presente: completed, sin mirar datos del servidor
//  3. encuesta sin respuestas: not_sent
//  4. sin respuesta del asistente: not_sent
//  5. respuesta completed o con completed_at: completed (y se escribe el
//     override de forma oportunista: esta operación NO es pura)
//  6. respuesta pending: pending
//  7. estado no reconocido: pending
func (uc *statusUseCase) ResolveStatus(survey *entities.Survey, attendeeID string) entities.AttendeeStatus {
	if attendeeID == "" {
		return entities.StatusNotSent
	}

	overridden, err := uc.overrides.Get(survey.ID, attendeeID)
	if err != nil {
		// el almacén caído degrada a resolver solo contra el servidor
		fmt.Printf("Error leyendo override de encuesta %d: %v\n", survey.ID, err)
	}
	if overridden {
		return entities.StatusCompleted
	}

	if len(survey.Responses) == 0 {
		return entities.StatusNotSent
	}

	response := survey.ResponseFor(attendeeID)
	if response == nil {
		return entities.StatusNotSent
	}

	if response.State == entities.ResponseStateCompleted || response.CompletedAt != nil {
		// escritura oportunista: próximas resoluciones no dependen de que
		// el backend siga devolviendo la respuesta
		if err := uc.overrides.Set(survey.ID, attendeeID); err != nil {
			fmt.Printf("Error guardando override de encuesta %d: %v\n", survey.ID, err)
		}
		return entities.StatusCompleted
	}

	if response.State == entities.ResponseStatePending {
		return entities.StatusPending
	}

	// estado presente pero desconocido
	return entities.StatusPending
}

// Annotate resuelve el estado de cada encuesta de la lista y arma las
// tarjetas accionables para el front
func (uc *statusUseCase) Annotate(surveys []entities.Survey, attendeeID string, now time.Time) []entities.AnnotatedSurvey {
	annotated := make([]entities.AnnotatedSurvey, 0, len(surveys))
	for _, s := range surveys {
		status := uc.ResolveStatus(&s, attendeeID)
		annotated = append(annotated, entities.AnnotatedSurvey{
			Survey:      s,
			Status:      status,
			StatusLabel: status.Label(),
			Actionable:  status != entities.StatusCompleted && s.OpenAt(now),
		})
	}
	return annotated
}
