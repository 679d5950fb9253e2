package repositories

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyCompleted señala el conflicto de completitud duplicada.
	// No es fatal para el flujo de completar: se absorbe y se reconcilia
	// el estado local igual que en el camino de éxito.
	ErrAlreadyCompleted = errors.New("la encuesta ya ha sido completada")

	// ErrUnauthorized indica 401/403 del backend; requiere re-login
	ErrUnauthorized = errors.New("sesión inválida o expirada")
)

// UpstreamError conserva el status y mensaje del backend para que el
// handler pueda reenviarlos al front
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("backend respondió %d: %s", e.Status, e.Message)
}
