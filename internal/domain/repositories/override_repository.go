package repositories

import (
	"fmt"

	"github.com/acamposr/event-surveys-api/internal/domain/entities"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// OverrideRepository es el almacén de confirmaciones locales de completitud,
// con clave (encuesta, asistente). Una entrada presente gana siempre sobre
// el estado que reporte el backend y nunca se invalida.
type OverrideRepository interface {
	Get(surveyID uint, attendeeID string) (bool, error)
	Set(surveyID uint, attendeeID string) error
}

type overrideRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewOverrideRepository(db *gorm.DB) OverrideRepository {
	return &overrideRepository{
		db: db,
		// las entradas no expiran, el cache solo evita golpear la DB
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func overrideKey(surveyID uint, attendeeID string) string {
	return fmt.Sprintf("override:%d:%s", surveyID, attendeeID)
}

func (r *overrideRepository) Get(surveyID uint, attendeeID string) (bool, error) {
	if attendeeID == "" {
		return false, nil
	}

	key := overrideKey(surveyID, attendeeID)
	if _, found := r.cache.Get(key); found {
		return true, nil
	}

	var count int64
	err := r.db.Model(&entities.OverrideEntry{}).
		Where("survey_id = ? AND attendee_id = ?", surveyID, attendeeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("error consultando overrides: %w", err)
	}

	if count > 0 {
		r.cache.Set(key, true, cache.NoExpiration)
		return true, nil
	}
	return false, nil
}

func (r *overrideRepository) Set(surveyID uint, attendeeID string) error {
	if attendeeID == "" {
		return fmt.Errorf("attendee_id vacío para override de encuesta %d", surveyID)
	}

	entry := entities.OverrideEntry{SurveyID: surveyID, AttendeeID: attendeeID}
	if err := r.db.FirstOrCreate(&entry, entities.OverrideEntry{
		SurveyID:   surveyID,
		AttendeeID: attendeeID,
	}).Error; err != nil {
		return fmt.Errorf("error guardando override: %w", err)
	}

	r.cache.Set(overrideKey(surveyID, attendeeID), true, cache.NoExpiration)
	return nil
}
