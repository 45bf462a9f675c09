package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/anuncios-armazem/internal/application/auth"
	"github.com/jhoicas/anuncios-armazem/internal/application/dto"
	"github.com/jhoicas/anuncios-armazem/internal/domain"
	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
)

// mockCompanyRepo implementación mock de repository.CompanyRepository.
type mockCompanyRepo struct {
	mock.Mock
}

func (m *mockCompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Company)
	return c, args.Error(1)
}

func (m *mockCompanyRepo) GetByEmail(ctx context.Context, email string) (*entity.Company, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*entity.Company)
	return c, args.Error(1)
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		Name:            "Acme",
		Email:           "acme@x.com",
		ConfirmEmail:    "acme@x.com",
		Password:        "password1",
		ConfirmPassword: "password1",
		Type:            entity.CompanyTypeWarehouse,
	}
}

func newUseCase(repo *mockCompanyRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo).WithBcryptCost(bcrypt.MinCost)
}

func TestRegister_ValidacionesNoPersisten(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		want   error
	}{
		{name: "contraseña corta", mutate: func(r *dto.RegisterRequest) { r.Password, r.ConfirmPassword = "1234567", "1234567" }, want: domain.ErrPasswordTooShort},
		{name: "contraseña de más de 72 bytes", mutate: func(r *dto.RegisterRequest) {
			long := strings.Repeat("a", 80)
			r.Password, r.ConfirmPassword = long, long
		}, want: domain.ErrPasswordTooLong},
		{name: "emails distintos", mutate: func(r *dto.RegisterRequest) { r.ConfirmEmail = "otro@x.com" }, want: domain.ErrEmailMismatch},
		{name: "contraseñas distintas", mutate: func(r *dto.RegisterRequest) { r.ConfirmPassword = "password2" }, want: domain.ErrPasswordMismatch},
		{name: "tipo inválido", mutate: func(r *dto.RegisterRequest) { r.Type = "Banco" }, want: domain.ErrInvalidCompanyType},
		{name: "sin nombre", mutate: func(r *dto.RegisterRequest) { r.Name = "  " }, want: domain.ErrInvalidInput},
		{name: "corta gana sobre emails distintos", mutate: func(r *dto.RegisterRequest) { r.Password = "short"; r.ConfirmEmail = "b@x.com" }, want: domain.ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockCompanyRepo)
			in := validRegister()
			tt.mutate(&in)

			out, err := newUseCase(repo).Register(context.Background(), in)

			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, out)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_HasheaYPersiste(t *testing.T) {
	repo := new(mockCompanyRepo)
	repo.On("GetByEmail", mock.Anything, "acme@x.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Company) bool {
		return c.PasswordHash != "password1" &&
			bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("password1")) == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Company).ID = 42
	}).Return(nil)

	out, err := newUseCase(repo).Register(context.Background(), validRegister())

	require.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)
	assert.Equal(t, entity.CompanyTypeWarehouse, out.Type)
	repo.AssertExpectations(t)
}

func TestRegister_ContraseñaDe72BytesSeAcepta(t *testing.T) {
	repo := new(mockCompanyRepo)
	repo.On("GetByEmail", mock.Anything, "acme@x.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	in := validRegister()
	in.Password = strings.Repeat("a", auth.MaxPasswordBytes)
	in.ConfirmPassword = in.Password

	_, err := newUseCase(repo).Register(context.Background(), in)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := new(mockCompanyRepo)
	repo.On("GetByEmail", mock.Anything, "acme@x.com").Return(&entity.Company{ID: 1, Email: "acme@x.com"}, nil)

	_, err := newUseCase(repo).Register(context.Background(), validRegister())

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_EmailDuplicadoEnCarrera(t *testing.T) {
	repo := new(mockCompanyRepo)
	repo.On("GetByEmail", mock.Anything, "acme@x.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrEmailAlreadyExists)

	_, err := newUseCase(repo).Register(context.Background(), validRegister())

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &entity.Company{ID: 7, Name: "Acme", Email: "acme@x.com", PasswordHash: string(hash), Type: entity.CompanyTypeWarehouse}

	repo := new(mockCompanyRepo)
	repo.On("GetByEmail", mock.Anything, "acme@x.com").Return(stored, nil)
	repo.On("GetByEmail", mock.Anything, "nadie@x.com").Return(nil, nil)
	uc := newUseCase(repo)

	t.Run("credenciales correctas", func(t *testing.T) {
		out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "acme@x.com", Password: "password1"})
		require.NoError(t, err)
		assert.Equal(t, &dto.SessionCompany{ID: 7, Name: "Acme", Type: entity.CompanyTypeWarehouse}, out)
	})

	t.Run("contraseña incorrecta", func(t *testing.T) {
		out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "acme@x.com", Password: "password2"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Nil(t, out)
	})

	t.Run("email desconocido da el mismo error", func(t *testing.T) {
		out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@x.com", Password: "password1"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Nil(t, out)
	})
}

func TestLogin_ErrorDeInfraestructura(t *testing.T) {
	repo := new(mockCompanyRepo)
	boom := errors.New("db caída")
	repo.On("GetByEmail", mock.Anything, "acme@x.com").Return(nil, boom)

	_, err := newUseCase(repo).Login(context.Background(), dto.LoginRequest{Email: "acme@x.com", Password: "password1"})
	assert.ErrorIs(t, err, boom)
}
