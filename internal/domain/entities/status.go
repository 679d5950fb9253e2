package entities

// AttendeeStatus es el estado efectivo de una encuesta para el usuario actual
type AttendeeStatus string

const (
	StatusNotSent   AttendeeStatus = "not_sent"
	StatusPending   AttendeeStatus = "pending"
	StatusCompleted AttendeeStatus = "completed"
)

// Label devuelve el texto mostrado en las tarjetas del front
func (s AttendeeStatus) Label() string {
	switch s {
	case StatusNotSent:
		return "Sin enviar"
	case StatusPending:
		return "Pendiente"
	case StatusCompleted:
		return "Completada"
	}
	return "No disponible"
}

// AnnotatedSurvey es la encuesta junto con el estado personalizado del
// usuario actual, lista para renderizar como tarjeta accionable
type AnnotatedSurvey struct {
	Survey
	Status      AttendeeStatus `json:"status"`
	StatusLabel string         `json:"status_label"`
	// Actionable indica si la encuesta acepta respuestas ahora mismo
	// (activa y dentro de su ventana de validez) y aún no fue completada
	Actionable bool `json:"actionable"`
}
