package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acamposr/event-surveys-api/internal/domain/entities"
	"github.com/acamposr/event-surveys-api/internal/domain/repositories"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// WorkflowState es el estado del flujo de completar una encuesta cuyo
// formulario externo se abre en otro contexto
type WorkflowState string

const (
	WorkflowIdle       WorkflowState = "idle"
	WorkflowFormOpened WorkflowState = "form_opened"
	WorkflowConfirming WorkflowState = "confirming"
	WorkflowCompleted  WorkflowState = "completed"
	WorkflowFailed     WorkflowState = "failed"
)

var (
	// ErrIdentityUnresolved corta el flujo antes de llamar al backend:
	// sin id de asistente no hay a quién atribuir la completitud
	ErrIdentityUnresolved = errors.New("no se pudo determinar el asistente de la sesión; vuelve a iniciar sesión")

	ErrSurveyNotFound = errors.New("encuesta no encontrada en el evento")
)

// OpenResult es la respuesta al abrir el formulario externo
type OpenResult struct {
	SurveyID uint          `json:"survey_id"`
	FormURL  string        `json:"form_url"`
	State    WorkflowState `json:"state"`
	// ConfirmationArmed indica si al volver hay que preguntar
	// "¿completaste el formulario?" (no se arma si ya estaba completada)
	ConfirmationArmed bool `json:"confirmation_armed"`
}

// CompletionResult es la respuesta a una confirmación, tanto en el camino
// de éxito como cuando el backend reportó que ya estaba completada
type CompletionResult struct {
	SurveyID    uint                    `json:"survey_id"`
	ReceiptID   string                  `json:"receipt_id"`
	State       WorkflowState           `json:"state"`
	Status      entities.AttendeeStatus `json:"status"`
	StatusLabel string                  `json:"status_label"`
	// AlreadyCompleted distingue el conflicto absorbido del éxito directo
	AlreadyCompleted bool               `json:"already_completed"`
	Response         *entities.Response `json:"response"`
}

// CompletionUseCase maneja el flujo idle → form_opened → confirming →
// {completed | failed}. Las instancias viven por par (encuesta, asistente)
// porque abrir y confirmar llegan en requests separados.
type CompletionUseCase interface {
	Open(ctx context.Context, token string, eventID, surveyID uint, attendeeID string) (*OpenResult, error)
	Confirm(ctx context.Context, token string, surveyID uint, attendeeID string) (*CompletionResult, error)
	State(surveyID uint, attendeeID string) WorkflowState
}

type completionUseCase struct {
	surveyRepo repositories.SurveyRepository
	overrides  repositories.OverrideRepository
	status     StatusUseCase
	workflows  *cache.Cache
}

func NewCompletionUseCase(surveyRepo repositories.SurveyRepository, overrides repositories.OverrideRepository, status StatusUseCase) CompletionUseCase {
	return &completionUseCase{
		surveyRepo: surveyRepo,
		overrides:  overrides,
		status:     status,
		workflows:  cache.New(30*time.Minute, time.Hour),
	}
}

func workflowKey(surveyID uint, attendeeID string) string {
	return fmt.Sprintf("workflow:%d:%s", surveyID, attendeeID)
}

// State devuelve el estado actual del flujo, idle si no hay instancia
func (uc *completionUseCase) State(surveyID uint, attendeeID string) WorkflowState {
	if state, found := uc.workflows.Get(workflowKey(surveyID, attendeeID)); found {
		return state.(WorkflowState)
	}
	return WorkflowIdle
}

func (uc *completionUseCase) setState(surveyID uint, attendeeID string, state WorkflowState) {
	uc.workflows.Set(workflowKey(surveyID, attendeeID), state, cache.DefaultExpiration)
}

// Open localiza la encuesta dentro del evento, pasa el flujo a
// form_opened y devuelve la URL del formulario externo. La confirmación
// solo se arma si la encuesta no estaba ya completada para el usuario.
func (uc *completionUseCase) Open(ctx context.Context, token string, eventID, surveyID uint, attendeeID string) (*OpenResult, error) {
	if eventID == 0 {
		return nil, ErrEventRequired
	}

	surveys, err := uc.surveyRepo.GetSurveysByEvent(ctx, token, eventID)
	if err != nil {
		return nil, err
	}

	var survey *entities.Survey
	for i := range surveys {
		if surveys[i].ID == surveyID {
			survey = &surveys[i]
			break
		}
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	status := uc.status.ResolveStatus(survey, attendeeID)
	uc.setState(surveyID, attendeeID, WorkflowFormOpened)

	return &OpenResult{
		SurveyID:          surveyID,
		FormURL:           survey.FormURL,
		State:             WorkflowFormOpened,
		ConfirmationArmed: status != entities.StatusCompleted,
	}, nil
}

// Confirm intenta persistir la completitud en el backend. El conflicto de
// "ya completada" se absorbe y termina en la misma reconciliación local
// que el éxito; cualquier otra falla revierte a form_opened para que el
// usuario reintente.
func (uc *completionUseCase) Confirm(ctx context.Context, token string, surveyID uint, attendeeID string) (*CompletionResult, error) {
	if attendeeID == "" {
		return nil, ErrIdentityUnresolved
	}

	uc.setState(surveyID, attendeeID, WorkflowConfirming)

	err := uc.surveyRepo.CompleteSurvey(ctx, token, surveyID, attendeeID)
	if err != nil && !errors.Is(err, repositories.ErrAlreadyCompleted) {
		uc.setState(surveyID, attendeeID, WorkflowFormOpened)
		return nil, err
	}
	alreadyCompleted := errors.Is(err, repositories.ErrAlreadyCompleted)

	// reconciliación local, compartida por éxito y conflicto: es el
	// mecanismo principal para mantener cliente y servidor alineados
	if err := uc.overrides.Set(surveyID, attendeeID); err != nil {
		fmt.Printf("Error guardando override tras completar encuesta %d: %v\n", surveyID, err)
	}

	now := time.Now()
	uc.setState(surveyID, attendeeID, WorkflowCompleted)

	return &CompletionResult{
		SurveyID:         surveyID,
		ReceiptID:        uuid.NewString(),
		State:            WorkflowCompleted,
		Status:           entities.StatusCompleted,
		StatusLabel:      entities.StatusCompleted.Label(),
		AlreadyCompleted: alreadyCompleted,
		Response: &entities.Response{
			SurveyID:    surveyID,
			AttendeeID:  attendeeID,
			State:       entities.ResponseStateCompleted,
			CompletedAt: &now,
		},
	}, nil
}
