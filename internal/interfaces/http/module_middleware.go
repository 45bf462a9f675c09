package http

import (
	"github.com/gofiber/fiber/v2"
)

// RequireCompanyType devuelve un middleware que solo deja pasar empresas del tipo indicado.
// Debe usarse DESPUÉS de RequireSession (necesita LocalCompany).
// Cualquier otro tipo, o la ausencia de empresa, redirige a /login.
func RequireCompanyType(companyType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		company := GetCompany(c)
		if company == nil || company.Type != companyType {
			return c.Redirect(loginPath, fiber.StatusFound)
		}
		return c.Next()
	}
}
