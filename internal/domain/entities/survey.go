package entities

import (
	"time"
)

// SurveyType clasifica la encuesta según el momento de la actividad
type SurveyType string

const (
	SurveyTypePreActivity       SurveyType = "pre_activity"
	SurveyTypeDuringActivity    SurveyType = "during_activity"
	SurveyTypePostActivity      SurveyType = "post_activity"
	SurveyTypeEventSatisfaction SurveyType = "event_satisfaction"
)

// IsValid indica si el valor recibido es uno de los tipos soportados
func (t SurveyType) IsValid() bool {
	switch t {
	case SurveyTypePreActivity, SurveyTypeDuringActivity, SurveyTypePostActivity, SurveyTypeEventSatisfaction:
		return true
	}
	return false
}

// SurveyMoment es el acompañante grueso de SurveyType
type SurveyMoment string

const (
	MomentBefore SurveyMoment = "before"
	MomentDuring SurveyMoment = "during"
	MomentAfter  SurveyMoment = "after"
)

// SurveyState es el ciclo de vida controlado por el organizador,
// distinto del estado de completitud por asistente
type SurveyState string

const (
	SurveyStateDraft  SurveyState = "draft"
	SurveyStateActive SurveyState = "active"
	SurveyStateClosed SurveyState = "closed"
)

// ResponseState es el estado de una respuesta individual
type ResponseState string

const (
	ResponseStatePending   ResponseState = "pending"
	ResponseStateCompleted ResponseState = "completed"
)

// Survey representa una encuesta asociada a un evento o a una de sus actividades.
// Los datos son propiedad del backend de la plataforma; este servicio solo los lee.
type Survey struct {
	ID           uint         `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Type         SurveyType   `json:"type"`
	Moment       SurveyMoment `json:"moment"`
	Mandatory    bool         `json:"mandatory"`
	FormURL      string       `json:"form_url"`
	ResponsesURL string       `json:"responses_url"`
	State        SurveyState  `json:"state"`
	EventID      uint         `json:"event_id"`
	// ActivityID es nil para encuestas de satisfacción (alcance de evento)
	ActivityID *uint      `json:"activity_id,omitempty"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	EndDate    *time.Time `json:"end_date,omitempty"`

	Responses []Response `json:"responses,omitempty"`
}

// Response representa el registro de completitud de un asistente.
// A lo sumo una respuesta por par (encuesta, asistente) es significativa.
type Response struct {
	SurveyID    uint          `json:"survey_id"`
	AttendeeID  string        `json:"attendee_id"`
	State       ResponseState `json:"state"`
	SentAt      *time.Time    `json:"sent_at,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// ResponseFor busca la respuesta del asistente dentro de la colección.
// Devuelve nil si no existe o si la colección viene vacía del backend.
func (s *Survey) ResponseFor(attendeeID string) *Response {
	if attendeeID == "" {
		return nil
	}
	for i := range s.Responses {
		if s.Responses[i].AttendeeID == attendeeID {
			return &s.Responses[i]
		}
	}
	return nil
}

// OpenAt indica si la encuesta acepta respuestas en el instante dado:
// estado active y dentro de la ventana de validez. Límites ausentes
// se tratan como no acotados.
func (s *Survey) OpenAt(now time.Time) bool {
	if s.State != SurveyStateActive {
		return false
	}
	if s.StartDate != nil && now.Before(*s.StartDate) {
		return false
	}
	if s.EndDate != nil && now.After(*s.EndDate) {
		return false
	}
	return true
}

// DisplayTitle devuelve el título o el texto por defecto cuando el
// backend manda datos parciales
func (s *Survey) DisplayTitle() string {
	if s.Title == "" {
		return "No disponible"
	}
	return s.Title
}
