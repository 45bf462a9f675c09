package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/anuncios-armazem/internal/application/dto"
	"github.com/jhoicas/anuncios-armazem/internal/domain"
	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
	"github.com/jhoicas/anuncios-armazem/internal/domain/repository"
)

// MinPasswordLength largo mínimo de la contraseña en el registro.
const MinPasswordLength = 8

// MaxPasswordBytes límite de entrada de bcrypt.
const MaxPasswordBytes = 72

// AuthUseCase casos de uso de autenticación: registro y login de empresas.
type AuthUseCase struct {
	companyRepo repository.CompanyRepository
	cost        int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(companyRepo repository.CompanyRepository) *AuthUseCase {
	return &AuthUseCase{companyRepo: companyRepo, cost: bcrypt.DefaultCost}
}

// WithBcryptCost permite bajar el costo del hash (tests).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// Register valida el formulario, hashea la contraseña con bcrypt y persiste la empresa.
// Las validaciones corren antes de cualquier escritura, en este orden:
// requeridos, largo de contraseña (mínimo y máximo en bytes), emails iguales, contraseñas iguales, tipo de cuenta.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.CompanyResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.ConfirmEmail = strings.TrimSpace(in.ConfirmEmail)
	if in.Name == "" || in.Email == "" || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	if len(in.Password) > MaxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}
	if in.Email != in.ConfirmEmail {
		return nil, domain.ErrEmailMismatch
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if !entity.ValidCompanyType(in.Type) {
		return nil, domain.ErrInvalidCompanyType
	}

	existing, err := uc.companyRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}
	company := &entity.Company{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Type:         in.Type,
	}
	// El UNIQUE de la tabla cubre la carrera entre la consulta y el insert.
	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Login verifica email/contraseña y devuelve la identidad a guardar en la sesión.
// Email desconocido y contraseña incorrecta devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionCompany, error) {
	company, err := uc.companyRepo.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.SessionCompany{ID: company.ID, Name: company.Name, Type: company.Type}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{ID: c.ID, Name: c.Name, Email: c.Email, Type: c.Type}
}
