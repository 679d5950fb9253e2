package platform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/acamposr/event-surveys-api/internal/domain/repositories"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, 5*time.Second), server
}

func TestGetSurveysByEvent(t *testing.T) {
	var gotPath, gotAuth string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 1, "title": "Encuesta de satisfacción", "type": "event_satisfaction", "event_id": 5},
			{"id": 2, "title": "Pre actividad", "type": "pre_activity", "event_id": 5, "activity_id": 9},
		})
	})
	defer server.Close()

	surveys, err := client.GetSurveysByEvent(context.Background(), "token-abc", 5)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if gotPath != "/surveys?event_id=5" {
		t.Errorf("ruta inesperada: %s", gotPath)
	}
	if gotAuth != "Bearer token-abc" {
		t.Errorf("header Authorization inesperado: %q", gotAuth)
	}
	if len(surveys) != 2 {
		t.Fatalf("se esperaban 2 encuestas, llegaron %d", len(surveys))
	}
	if surveys[0].ID != 1 || surveys[1].ActivityID == nil || *surveys[1].ActivityID != 9 {
		t.Errorf("decodificación inesperada: %+v", surveys)
	}
}

func TestGetSurveysUnauthorized(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer server.Close()

	if _, err := client.GetSurveysByEvent(context.Background(), "expirado", 5); !errors.Is(err, repositories.ErrUnauthorized) {
		t.Errorf("se esperaba ErrUnauthorized, llegó %v", err)
	}
}

func TestGetSurveysUpstreamError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"error": "backend caído"})
	})
	defer server.Close()

	_, err := client.GetSurveysByActivity(context.Background(), "token", 9)
	var upstream *repositories.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("se esperaba UpstreamError, llegó %v", err)
	}
	if upstream.Status != http.StatusBadGateway || upstream.Message != "backend caído" {
		t.Errorf("error upstream inesperado: %+v", upstream)
	}
}

func TestCompleteSurvey(t *testing.T) {
	var gotBody map[string]interface{}
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/surveys/3/complete" {
			t.Errorf("request inesperado: %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	})
	defer server.Close()

	if err := client.CompleteSurvey(context.Background(), "token", 3, "att-1"); err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if gotBody["survey_id"] != float64(3) || gotBody["attendee_id"] != "att-1" {
		t.Errorf("payload inesperado: %+v", gotBody)
	}
}

func TestCompleteSurveyConflict(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload map[string]string
	}{
		{"código 409", http.StatusConflict, nil},
		{"mensaje de duplicado con 400", http.StatusBadRequest, map[string]string{"error": "La encuesta ya ha sido completada"}},
		{"mensaje de duplicado en message", http.StatusUnprocessableEntity, map[string]string{"message": "ya ha sido completada por el asistente"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.payload != nil {
					json.NewEncoder(w).Encode(tt.payload)
				}
			})
			defer server.Close()

			err := client.CompleteSurvey(context.Background(), "token", 3, "att-1")
			if !errors.Is(err, repositories.ErrAlreadyCompleted) {
				t.Errorf("se esperaba ErrAlreadyCompleted, llegó %v", err)
			}
		})
	}
}

func TestCompleteSurveyUnauthorized(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	defer server.Close()

	if err := client.CompleteSurvey(context.Background(), "token", 3, "att-1"); !errors.Is(err, repositories.ErrUnauthorized) {
		t.Errorf("se esperaba ErrUnauthorized, llegó %v", err)
	}
}

func TestGetSurveyStatistics(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/surveys/7/statistics" {
			t.Errorf("ruta inesperada: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"sent": 10, "completed": 4, "pending": 6, "response_rate": 40.0,
		})
	})
	defer server.Close()

	stats, err := client.GetSurveyStatistics(context.Background(), "token", 7)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if stats.SurveyID != 7 {
		t.Errorf("debería completar el id de encuesta ausente, llegó %d", stats.SurveyID)
	}
	if stats.Sent != 10 || stats.Completed != 4 || stats.ResponseRate != 40.0 {
		t.Errorf("agregados inesperados: %+v", stats)
	}
}

func TestGetSessionUser(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			t.Errorf("ruta inesperada: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"asistente": map[string]interface{}{"id": "att-3"},
		})
	})
	defer server.Close()

	user, err := client.GetSessionUser(context.Background(), "token")
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	nested, ok := user["asistente"].(map[string]interface{})
	if !ok || nested["id"] != "att-3" {
		t.Errorf("usuario inesperado: %+v", user)
	}
}
