package identity

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionSource entrega el objeto de usuario de sesión del colaborador de
// autenticación (implementado por el cliente de la plataforma)
type SessionSource interface {
	GetSessionUser(ctx context.Context, token string) (map[string]interface{}, error)
}

// Provider construye la Session del request actual, cacheando el objeto
// de usuario por huella del token para no golpear el colaborador de
// autenticación en cada tarjeta renderizada
type Provider struct {
	source SessionSource
	cache  *cache.Cache
}

func NewProvider(source SessionSource) *Provider {
	return &Provider{
		source: source,
		cache:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

func tokenFingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("session:%x", sum[:8])
}

// Session devuelve la sesión para el token dado. Si el colaborador de
// autenticación falla, la sesión queda sin objeto de usuario y la
// resolución de identidad cae a decodificar el token.
func (p *Provider) Session(ctx context.Context, token string) Session {
	if token == "" {
		return Session{}
	}

	key := tokenFingerprint(token)
	if cached, found := p.cache.Get(key); found {
		return Session{User: cached.(map[string]interface{}), AccessToken: token}
	}

	user, err := p.source.GetSessionUser(ctx, token)
	if err != nil {
		fmt.Printf("No se pudo obtener el usuario de sesión: %v\n", err)
		return Session{AccessToken: token}
	}

	p.cache.Set(key, user, cache.DefaultExpiration)
	return Session{User: user, AccessToken: token}
}
