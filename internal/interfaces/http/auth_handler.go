package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/anuncios-armazem/internal/application/auth"
	"github.com/jhoicas/anuncios-armazem/internal/application/dto"
	"github.com/jhoicas/anuncios-armazem/pkg/logger"
)

// AuthHandler maneja la página inicial, registro, login y logout.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	store *session.Store
	log   *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, store *session.Store, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, store: store, log: log}
}

// Home godoc
// @Summary      Página inicial
// @Tags         pages
// @Produce      json
// @Success      200  {object}  dto.PageResponse
// @Router       / [get]
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.PageResponse{Page: "home", Company: sessionCompany(sess)})
}

// LoginPage godoc
// @Summary      Formulario de login
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.PageResponse
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(dto.PageResponse{Page: "login"})
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Limpia la identidad actual y verifica email/senha. En éxito redirige a /dashboard.
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, senha"
// @Success      303
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msgRequired})
	}
	sess, err := h.store.Get(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	clearSessionCompany(sess)

	company, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if saveErr := sess.Save(); saveErr != nil {
			return writeError(c, h.log, saveErr)
		}
		return writeError(c, h.log, err)
	}

	if err := sess.Regenerate(); err != nil {
		return writeError(c, h.log, err)
	}
	setSessionCompany(sess, company)
	if err := sess.Save(); err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Int64("company_id", company.ID).Msg("login")
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// RegisterPage godoc
// @Summary      Formulario de cadastro
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.PageResponse
// @Router       /register [get]
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return c.JSON(dto.PageResponse{Page: "register"})
}

// Register godoc
// @Summary      Registrar empresa
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nome, email, confirm_email, senha, confirm_senha, tipo"
// @Success      201   {object}  dto.PageResponse
// @Failure      400   {object}  dto.FormErrorResponse
// @Failure      409   {object}  dto.FormErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msgRequired})
	}
	company, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		status, body := errorResponse(err)
		if status == fiber.StatusInternalServerError {
			return writeError(c, h.log, err)
		}
		return c.Status(status).JSON(dto.FormErrorResponse{Code: body.Code, Message: body.Message, Form: in.Echo()})
	}
	h.log.Info().Int64("company_id", company.ID).Str("type", company.Type).Msg("empresa registrada")
	return c.Status(fiber.StatusCreated).JSON(dto.PageResponse{Page: "login", Message: msgAccountCreated, Data: company})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Destruye la sesión (identidad y borrador) y redirige a /.
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := sess.Destroy(); err != nil {
		return writeError(c, h.log, err)
	}
	return c.Redirect("/", fiber.StatusFound)
}
