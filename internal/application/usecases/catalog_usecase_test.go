package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/acamposr/event-surveys-api/internal/domain/entities"
)

type fakeSurveyRepo struct {
	surveys      []entities.Survey
	err          error
	completeErr  error
	completeCall int
	stats        *entities.SurveyStatistics
	statsCall    int
}

func (f *fakeSurveyRepo) GetSurveysByEvent(ctx context.Context, token string, eventID uint) ([]entities.Survey, error) {
	return f.surveys, f.err
}

func (f *fakeSurveyRepo) GetSurveysByActivity(ctx context.Context, token string, activityID uint) ([]entities.Survey, error) {
	return f.surveys, f.err
}

func (f *fakeSurveyRepo) CompleteSurvey(ctx context.Context, token string, surveyID uint, attendeeID string) error {
	f.completeCall++
	return f.completeErr
}

func (f *fakeSurveyRepo) GetSurveyStatistics(ctx context.Context, token string, surveyID uint) (*entities.SurveyStatistics, error) {
	f.statsCall++
	return f.stats, f.err
}

func uintPtr(v uint) *uint { return &v }

func testCatalog() []entities.Survey {
	return []entities.Survey{
		{ID: 1, Type: entities.SurveyTypeEventSatisfaction, EventID: 5, ActivityID: nil},
		{ID: 2, Type: entities.SurveyTypePreActivity, EventID: 5, ActivityID: uintPtr(9)},
		{ID: 3, Type: entities.SurveyTypePreActivity, EventID: 5, ActivityID: uintPtr(12)},
		{ID: 4, Type: entities.SurveyTypePostActivity, EventID: 5, ActivityID: uintPtr(9)},
	}
}

func TestFilterSurveys(t *testing.T) {
	tests := []struct {
		name     string
		filter   CatalogFilter
		expected []uint
	}{
		{
			name:     "sin filtros devuelve todas las del evento",
			filter:   CatalogFilter{EventID: 5},
			expected: []uint{1, 2, 3, 4},
		},
		{
			name:     "satisfacción exige actividad nula",
			filter:   CatalogFilter{EventID: 5, Type: entities.SurveyTypeEventSatisfaction},
			expected: []uint{1},
		},
		{
			name: "satisfacción ignora la actividad seleccionada",
			filter: CatalogFilter{
				EventID:    5,
				Type:       entities.SurveyTypeEventSatisfaction,
				ActivityID: uintPtr(9),
			},
			expected: []uint{1},
		},
		{
			name:     "tipo sin actividad",
			filter:   CatalogFilter{EventID: 5, Type: entities.SurveyTypePreActivity},
			expected: []uint{2, 3},
		},
		{
			name: "tipo más actividad",
			filter: CatalogFilter{
				EventID:    5,
				Type:       entities.SurveyTypePreActivity,
				ActivityID: uintPtr(9),
			},
			expected: []uint{2},
		},
		{
			name:     "solo actividad",
			filter:   CatalogFilter{EventID: 5, ActivityID: uintPtr(9)},
			expected: []uint{2, 4},
		},
		{
			name:     "actividad sin coincidencias",
			filter:   CatalogFilter{EventID: 5, ActivityID: uintPtr(99)},
			expected: []uint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCatalogUseCase(&fakeSurveyRepo{surveys: testCatalog()})

			result, err := uc.FilterSurveys(context.Background(), "token", tt.filter)
			if err != nil {
				t.Fatalf("error inesperado: %v", err)
			}

			if len(result) != len(tt.expected) {
				t.Fatalf("se esperaban %d encuestas, llegaron %d", len(tt.expected), len(result))
			}
			for i, id := range tt.expected {
				if result[i].ID != id {
					t.Errorf("posición %d: se esperaba id %d, llegó %d", i, id, result[i].ID)
				}
			}
		})
	}
}

func TestFilterSurveysRequiresEvent(t *testing.T) {
	uc := NewCatalogUseCase(&fakeSurveyRepo{})

	_, err := uc.FilterSurveys(context.Background(), "token", CatalogFilter{})
	if !errors.Is(err, ErrEventRequired) {
		t.Fatalf("se esperaba ErrEventRequired, llegó %v", err)
	}
}

func TestFilterSurveysInvalidType(t *testing.T) {
	uc := NewCatalogUseCase(&fakeSurveyRepo{})

	_, err := uc.FilterSurveys(context.Background(), "token", CatalogFilter{
		EventID: 5,
		Type:    entities.SurveyType("banana"),
	})
	if !errors.Is(err, ErrInvalidSurveyType) {
		t.Fatalf("se esperaba ErrInvalidSurveyType, llegó %v", err)
	}
}

func TestFilterSurveysPropagatesRepoError(t *testing.T) {
	repoErr := errors.New("timeout")
	uc := NewCatalogUseCase(&fakeSurveyRepo{err: repoErr})

	_, err := uc.FilterSurveys(context.Background(), "token", CatalogFilter{EventID: 5})
	if !errors.Is(err, repoErr) {
		t.Fatalf("se esperaba el error del repositorio, llegó %v", err)
	}
}

func TestGetSurveysByActivityRequiresID(t *testing.T) {
	uc := NewCatalogUseCase(&fakeSurveyRepo{})

	if _, err := uc.GetSurveysByActivity(context.Background(), "token", 0); err == nil {
		t.Fatal("se esperaba error con activity_id cero")
	}
}
