package dto

// RegisterRequest formulario de cadastro de empresa.
type RegisterRequest struct {
	Name            string `json:"nome" form:"nome"`
	Email           string `json:"email" form:"email"`
	ConfirmEmail    string `json:"confirm_email" form:"confirm_email"`
	Password        string `json:"senha" form:"senha"`
	ConfirmPassword string `json:"confirm_senha" form:"confirm_senha"`
	Type            string `json:"tipo" form:"tipo"`
}

// RegisterForm eco del formulario de registro sin contraseñas.
type RegisterForm struct {
	Name         string `json:"nome"`
	Email        string `json:"email"`
	ConfirmEmail string `json:"confirm_email"`
	Type         string `json:"tipo"`
}

// Echo devuelve los campos que se pueden reenviar al cliente.
func (r RegisterRequest) Echo() RegisterForm {
	return RegisterForm{Name: r.Name, Email: r.Email, ConfirmEmail: r.ConfirmEmail, Type: r.Type}
}

// LoginRequest formulario de login.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"senha" form:"senha"`
}

// CompanyResponse salida de una empresa (sin hash de contraseña).
type CompanyResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

// SessionCompany identidad guardada en la sesión tras el login.
type SessionCompany struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
