package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/anuncios-armazem/internal/domain"
	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
	"github.com/jhoicas/anuncios-armazem/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre SQLite.
type CompanyRepo struct {
	db *sql.DB
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db *sql.DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa y asigna el ID autoincremental.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `INSERT INTO companies (name, email, password_hash, type) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, company.Name, company.Email, company.PasswordHash, company.Type)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert company id: %w", err)
	}
	company.ID = id
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	query := `SELECT id, name, email, password_hash, type FROM companies WHERE id = ?`
	return r.getOne(ctx, query, id)
}

// GetByEmail obtiene una empresa por email.
func (r *CompanyRepo) GetByEmail(ctx context.Context, email string) (*entity.Company, error) {
	query := `SELECT id, name, email, password_hash, type FROM companies WHERE email = ?`
	return r.getOne(ctx, query, email)
}

func (r *CompanyRepo) getOne(ctx context.Context, query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Email, &c.PasswordHash, &c.Type)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
