// Package identity resuelve el id de asistente del usuario actual. El id
// de asistente es distinto del id genérico de cuenta y el backend no lo
// expone en un lugar único, así que se prueban varias estrategias en orden.
package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Session es lo que se conoce del usuario actual: el objeto de sesión que
// entrega el colaborador de autenticación (puede faltar) y el access token
// crudo del request
type Session struct {
	User        map[string]interface{}
	AccessToken string
}

// Strategy intenta extraer el id de asistente de la sesión.
// Devuelve ok=false si no puede.
type Strategy func(Session) (string, bool)

// Resolver aplica las estrategias en orden hasta que una resuelva
type Resolver struct {
	strategies []Strategy
}

func NewResolver() *Resolver {
	return &Resolver{
		strategies: []Strategy{
			fromRoleData,
			fromAlternateFields,
			fromTokenClaims,
		},
	}
}

// ResolveAttendeeID devuelve el id de asistente y ok=true, u ok=false si
// ninguna estrategia resolvió. Un id sin resolver no es un error: el
// resolver de estado lo trata como "sin datos".
func (r *Resolver) ResolveAttendeeID(s Session) (string, bool) {
	for _, strategy := range r.strategies {
		if id, ok := strategy(s); ok {
			return id, true
		}
	}
	return "", false
}

// nestedKeys son las formas anidadas bajo las que aparece el id de
// asistente dentro del objeto de usuario (datos de rol)
var nestedKeys = []struct {
	object string
	field  string
}{
	{"asistente", "id"},
	{"role_data", "attendee_id"},
}

// alternateKeys son los nombres planos alternativos observados en el
// objeto de usuario
var alternateKeys = []string{"attendee_id", "attendeeId", "id_asistente", "asistente_id"}

func fromRoleData(s Session) (string, bool) {
	if s.User == nil {
		return "", false
	}
	for _, nk := range nestedKeys {
		if id, ok := nestedString(s.User, nk.object, nk.field); ok {
			return id, true
		}
	}
	return "", false
}

func fromAlternateFields(s Session) (string, bool) {
	if s.User == nil {
		return "", false
	}
	for _, key := range alternateKeys {
		if id, ok := asID(s.User[key]); ok {
			return id, true
		}
	}
	return "", false
}

// fromTokenClaims decodifica el payload del token sin verificar la firma;
// acá solo interesa leer claims, la verificación es del backend
func fromTokenClaims(s Session) (string, bool) {
	if s.AccessToken == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.AccessToken, claims); err != nil {
		return "", false
	}

	for _, nk := range nestedKeys {
		if id, ok := nestedString(claims, nk.object, nk.field); ok {
			return id, true
		}
	}
	if id, ok := asID(claims["attendee_id"]); ok {
		return id, true
	}
	if id, ok := asID(claims["sub"]); ok {
		return id, true
	}
	return "", false
}

func nestedString(m map[string]interface{}, object, field string) (string, bool) {
	nested, ok := m[object].(map[string]interface{})
	if !ok {
		return "", false
	}
	return asID(nested[field])
}

// asID acepta strings y números (JSON decodifica números como float64)
func asID(v interface{}) (string, bool) {
	switch value := v.(type) {
	case string:
		if value == "" {
			return "", false
		}
		return value, true
	case float64:
		return fmt.Sprintf("%.0f", value), true
	case int:
		return fmt.Sprintf("%d", value), true
	}
	return "", false
}
