package http

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/jhoicas/anuncios-armazem/internal/application/dto"
	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
	"github.com/jhoicas/anuncios-armazem/pkg/config"
)

// Claves guardadas en la sesión del servidor.
const (
	sessionKeyCompanyID   = "company_id"
	sessionKeyCompanyName = "company_name"
	sessionKeyCompanyType = "company_type"
	sessionKeyDraft       = "listing_draft"
)

// NewSessionStore crea el store de sesiones (memoria) con cookie HttpOnly e ids UUID.
func NewSessionStore(cfg config.SessionConfig) *session.Store {
	return session.New(session.Config{
		Expiration:     cfg.Expiration(),
		KeyLookup:      "cookie:" + cfg.CookieName,
		CookieSecure:   cfg.CookieSecure,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
		KeyGenerator:   uuid.NewString,
	})
}

// sessionCompany lee la identidad de la sesión; nil si no hay login.
func sessionCompany(sess *session.Session) *dto.SessionCompany {
	id, ok := sess.Get(sessionKeyCompanyID).(int64)
	if !ok || id == 0 {
		return nil
	}
	name, _ := sess.Get(sessionKeyCompanyName).(string)
	typ, _ := sess.Get(sessionKeyCompanyType).(string)
	return &dto.SessionCompany{ID: id, Name: name, Type: typ}
}

func setSessionCompany(sess *session.Session, c *dto.SessionCompany) {
	sess.Set(sessionKeyCompanyID, c.ID)
	sess.Set(sessionKeyCompanyName, c.Name)
	sess.Set(sessionKeyCompanyType, c.Type)
}

func clearSessionCompany(sess *session.Session) {
	sess.Delete(sessionKeyCompanyID)
	sess.Delete(sessionKeyCompanyName)
	sess.Delete(sessionKeyCompanyType)
}

// El borrador se guarda como JSON para no depender del registro de tipos de gob.
func saveDraft(sess *session.Session, d *entity.ListingDraft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("serializar borrador: %w", err)
	}
	sess.Set(sessionKeyDraft, string(raw))
	return nil
}

// loadDraft devuelve (nil, nil) si la sesión no tiene borrador.
func loadDraft(sess *session.Session) (*entity.ListingDraft, error) {
	raw, ok := sess.Get(sessionKeyDraft).(string)
	if !ok || raw == "" {
		return nil, nil
	}
	var d entity.ListingDraft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("leer borrador: %w", err)
	}
	return &d, nil
}

func clearDraft(sess *session.Session) {
	sess.Delete(sessionKeyDraft)
}
