package entities

import "time"

// SurveyStatistics son los agregados que expone el backend por encuesta,
// consumidos tal cual por la capa de reportes
type SurveyStatistics struct {
	SurveyID     uint         `json:"survey_id"`
	Sent         int          `json:"sent"`
	Completed    int          `json:"completed"`
	Pending      int          `json:"pending"`
	ResponseRate float64      `json:"response_rate"`
	Respondents  []Respondent `json:"respondents,omitempty"`
}

// Respondent es una fila de la lista de respuestas con los campos de
// presentación del asistente
type Respondent struct {
	AttendeeID  string        `json:"attendee_id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	State       ResponseState `json:"state"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
}

// DisplayName evita mostrar celdas vacías cuando el backend manda
// datos parciales
func (r Respondent) DisplayName() string {
	if r.Name == "" {
		return "No disponible"
	}
	return r.Name
}
