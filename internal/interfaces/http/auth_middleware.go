package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/anuncios-armazem/internal/application/dto"
)

// Locals keys cargadas por los middlewares de sesión.
const (
	LocalCompany = "company"
	LocalSession = "session"
)

// loginPath destino de toda falla de autorización.
const loginPath = "/login"

// RequireSession exige una empresa logueada. Sin login redirige a /login.
// Carga la sesión y la empresa en c.Locals para los handlers.
func RequireSession(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		company := sessionCompany(sess)
		if company == nil {
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		c.Locals(LocalSession, sess)
		c.Locals(LocalCompany, company)
		return c.Next()
	}
}

// GetCompany devuelve la empresa del contexto (después de RequireSession).
func GetCompany(c *fiber.Ctx) *dto.SessionCompany {
	v, _ := c.Locals(LocalCompany).(*dto.SessionCompany)
	return v
}

// GetCompanyID devuelve el id de la empresa del contexto, 0 si no hay.
func GetCompanyID(c *fiber.Ctx) int64 {
	if company := GetCompany(c); company != nil {
		return company.ID
	}
	return 0
}

// getSession reutiliza la sesión cargada por el middleware o la obtiene del store.
func getSession(c *fiber.Ctx, store *session.Store) (*session.Session, error) {
	if sess, ok := c.Locals(LocalSession).(*session.Session); ok {
		return sess, nil
	}
	return store.Get(c)
}
