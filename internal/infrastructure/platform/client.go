// Package platform implementa el cliente HTTP hacia el backend REST de la
// plataforma de eventos. El backend es una caja negra: este servicio solo
// reenvía el bearer token del usuario y consume JSON.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/acamposr/event-surveys-api/internal/domain/entities"
	"github.com/acamposr/event-surveys-api/internal/domain/repositories"
)

// duplicateMessage es el texto con el que el backend reporta el conflicto
// de completitud duplicada cuando no usa el código 409
const duplicateMessage = "ya ha sido completada"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("error preparando request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// readError extrae el mensaje de error del body ({"error": ...} o
// {"message": ...}); si no puede, devuelve el texto crudo
func readError(resp *http.Response) string {
	raw, err := io.ReadAll(resp.Body)
	if err != nil || len(raw) == 0 {
		return http.StatusText(resp.StatusCode)
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return strings.TrimSpace(string(raw))
}

func (c *Client) getSurveys(ctx context.Context, token, query string) ([]entities.Survey, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/surveys?"+query, token, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error consultando encuestas: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, repositories.ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, &repositories.UpstreamError{Status: resp.StatusCode, Message: readError(resp)}
	}

	var surveys []entities.Survey
	if err := json.NewDecoder(resp.Body).Decode(&surveys); err != nil {
		return nil, fmt.Errorf("error decodificando encuestas: %w", err)
	}
	return surveys, nil
}

// GetSurveysByEvent trae todas las encuestas del evento, en el orden en
// que el backend las devuelve (no se reordena en el cliente)
func (c *Client) GetSurveysByEvent(ctx context.Context, token string, eventID uint) ([]entities.Survey, error) {
	return c.getSurveys(ctx, token, fmt.Sprintf("event_id=%d", eventID))
}

// GetSurveysByActivity es la variante usada por la vista de ponentes
func (c *Client) GetSurveysByActivity(ctx context.Context, token string, activityID uint) ([]entities.Survey, error) {
	return c.getSurveys(ctx, token, fmt.Sprintf("activity_id=%d", activityID))
}

// CompleteSurvey marca la encuesta como completada para el asistente.
// Un 409 o un mensaje de duplicado se mapean a repositories.ErrAlreadyCompleted.
func (c *Client) CompleteSurvey(ctx context.Context, token string, surveyID uint, attendeeID string) error {
	payload, err := json.Marshal(map[string]interface{}{
		"survey_id":   surveyID,
		"attendee_id": attendeeID,
	})
	if err != nil {
		return fmt.Errorf("error serializando payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, fmt.Sprintf("/surveys/%d/complete", surveyID), token, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error completando encuesta: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return repositories.ErrAlreadyCompleted
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return repositories.ErrUnauthorized
	}

	msg := readError(resp)
	if strings.Contains(strings.ToLower(msg), duplicateMessage) {
		return repositories.ErrAlreadyCompleted
	}
	return &repositories.UpstreamError{Status: resp.StatusCode, Message: msg}
}

// GetSurveyStatistics trae los agregados de la encuesta (solo lectura)
func (c *Client) GetSurveyStatistics(ctx context.Context, token string, surveyID uint) (*entities.SurveyStatistics, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/surveys/%d/statistics", surveyID), token, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error consultando estadísticas: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, repositories.ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, &repositories.UpstreamError{Status: resp.StatusCode, Message: readError(resp)}
	}

	var stats entities.SurveyStatistics
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("error decodificando estadísticas: %w", err)
	}
	if stats.SurveyID == 0 {
		stats.SurveyID = surveyID
	}
	return &stats, nil
}

// GetSessionUser trae el objeto de usuario de sesión del colaborador de
// autenticación. Se devuelve sin tipar: el resolver de identidad prueba
// varias formas sobre él.
func (c *Client) GetSessionUser(ctx context.Context, token string) (map[string]interface{}, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/me", token, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error consultando sesión: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, repositories.ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, &repositories.UpstreamError{Status: resp.StatusCode, Message: readError(resp)}
	}

	var user map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("error decodificando usuario de sesión: %w", err)
	}
	return user, nil
}
