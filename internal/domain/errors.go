package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")

	// Registro de empresas.
	ErrPasswordTooShort   = errors.New("la contraseña debe tener al menos 8 caracteres")
	ErrPasswordTooLong    = errors.New("la contraseña supera los 72 bytes")
	ErrEmailMismatch      = errors.New("los emails no coinciden")
	ErrPasswordMismatch   = errors.New("las contraseñas no coinciden")
	ErrInvalidCompanyType = errors.New("tipo de empresa inválido")

	// Borrador de anuncio guardado en sesión.
	ErrDraftNotFound = errors.New("no hay borrador de anuncio en la sesión")
	ErrDraftExpired  = errors.New("el borrador de anuncio expiró")
)
