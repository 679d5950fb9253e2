package entities

import "time"

// OverrideEntry registra que el usuario confirmó localmente la completitud
// de una encuesta, independiente de lo que reporte el backend. Se crea al
// completar con éxito o al recibir un conflicto de "ya completada"; nunca
// expira y sobrevive a la eliminación de la encuesta (queda huérfano sin
// efecto).
type OverrideEntry struct {
	SurveyID   uint      `gorm:"column:survey_id;primaryKey" json:"survey_id"`
	AttendeeID string    `gorm:"column:attendee_id;primaryKey;size:64" json:"attendee_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OverrideEntry) TableName() string {
	return "survey_completion_overrides"
}
