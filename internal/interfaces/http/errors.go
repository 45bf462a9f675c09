package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/anuncios-armazem/internal/application/dto"
	"github.com/jhoicas/anuncios-armazem/internal/domain"
	"github.com/jhoicas/anuncios-armazem/pkg/logger"
)

// Mensajes mostrados al usuario.
const (
	msgRequired         = "Preencha todos os campos obrigatórios corretamente."
	msgPasswordShort    = "A senha deve ter pelo menos 8 caracteres."
	msgPasswordLong     = "A senha deve ter no máximo 72 bytes."
	msgEmailMismatch    = "Os emails não coincidem."
	msgPasswordMismatch = "As senhas não coincidem."
	msgInvalidType      = "Tipo de conta inválido."
	msgEmailExists      = "Email já cadastrado."
	msgBadCredentials   = "Email ou senha incorretos."
	msgListingNotFound  = "Anúncio não encontrado"
	msgDraftNotFound    = "Nenhum anúncio em andamento. Comece pela primeira etapa."
	msgDraftExpired     = "O anúncio em andamento expirou. Comece novamente."
	msgAccountCreated   = "Conta criada com sucesso! Faça login."
	msgInternal         = "Erro interno. Tente novamente mais tarde."
)

// errorResponse traduce un error de dominio al status y cuerpo HTTP.
func errorResponse(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: msgRequired}
	case errors.Is(err, domain.ErrPasswordTooShort):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "PASSWORD_TOO_SHORT", Message: msgPasswordShort}
	case errors.Is(err, domain.ErrPasswordTooLong):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "PASSWORD_TOO_LONG", Message: msgPasswordLong}
	case errors.Is(err, domain.ErrEmailMismatch):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "EMAIL_MISMATCH", Message: msgEmailMismatch}
	case errors.Is(err, domain.ErrPasswordMismatch):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "PASSWORD_MISMATCH", Message: msgPasswordMismatch}
	case errors.Is(err, domain.ErrInvalidCompanyType):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_TYPE", Message: msgInvalidType}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: msgEmailExists}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: msgBadCredentials}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: msgListingNotFound}
	case errors.Is(err, domain.ErrDraftNotFound):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "DRAFT_NOT_FOUND", Message: msgDraftNotFound}
	case errors.Is(err, domain.ErrDraftExpired):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "DRAFT_EXPIRED", Message: msgDraftExpired}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: msgInternal}
	}
}

// writeError responde con el cuerpo uniforme; los 500 se registran con el error original.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, body := errorResponse(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("request_id", requestID(c)).
			Str("path", c.Path()).
			Msg("error interno")
	}
	return c.Status(status).JSON(body)
}

// ErrorHandler handler de errores de Fiber: errores sin manejar o panics recuperados.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code == fiber.StatusNotFound {
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: fe.Message})
			}
			if fe.Code < fiber.StatusInternalServerError {
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: fe.Message})
			}
		}
		return writeError(c, log, err)
	}
}
