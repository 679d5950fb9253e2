package usecases

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/acamposr/event-surveys-api/internal/domain/entities"
	"github.com/acamposr/event-surveys-api/internal/domain/repositories"
	"github.com/patrickmn/go-cache"
)

// StatisticsUseCase expone los agregados por encuesta para la capa de
// reportes. Solo lectura; se cachea brevemente porque el front los pide
// en cada refresco del panel.
type StatisticsUseCase interface {
	GetSurveyStatistics(ctx context.Context, token string, surveyID uint) (*entities.SurveyStatistics, error)
}

type statisticsUseCase struct {
	surveyRepo repositories.SurveyRepository
	cache      *cache.Cache
}

func NewStatisticsUseCase(surveyRepo repositories.SurveyRepository) StatisticsUseCase {
	return &statisticsUseCase{
		surveyRepo: surveyRepo,
		cache:      cache.New(1*time.Minute, 5*time.Minute),
	}
}

// statsKey incluye la huella del token: los agregados traen nombres y
// correos de respondientes, así que una entrada cacheada solo sirve al
// mismo portador que el backend ya autorizó
func statsKey(token string, surveyID uint) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("stats:%x:%d", sum[:8], surveyID)
}

func (uc *statisticsUseCase) GetSurveyStatistics(ctx context.Context, token string, surveyID uint) (*entities.SurveyStatistics, error) {
	cacheKey := statsKey(token, surveyID)
	if cached, found := uc.cache.Get(cacheKey); found {
		return cached.(*entities.SurveyStatistics), nil
	}

	stats, err := uc.surveyRepo.GetSurveyStatistics(ctx, token, surveyID)
	if err != nil {
		return nil, err
	}

	// el backend a veces omite la tasa; se recalcula en vez de mostrar 0
	if stats.ResponseRate == 0 && stats.Sent > 0 {
		stats.ResponseRate = float64(stats.Completed) / float64(stats.Sent) * 100
	}

	uc.cache.Set(cacheKey, stats, cache.DefaultExpiration)
	return stats, nil
}
