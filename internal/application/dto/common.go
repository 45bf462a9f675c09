package dto

// ErrorResponse cuerpo de error HTTP uniforme.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FormErrorResponse error de validación que devuelve el formulario enviado
// para que la vista lo vuelva a pintar (sin contraseñas).
type FormErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Form    any    `json:"form,omitempty"`
}

// PageResponse descriptor de una pantalla que el renderizador de vistas consume.
type PageResponse struct {
	Page    string          `json:"page"`
	Message string          `json:"message,omitempty"`
	Company *SessionCompany `json:"company,omitempty"`
	Data    any             `json:"data,omitempty"`
}
