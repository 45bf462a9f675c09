package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
	"github.com/jhoicas/anuncios-armazem/internal/domain/repository"
	"github.com/jhoicas/anuncios-armazem/internal/infrastructure/sqlfilter"
)

var _ repository.ListingRepository = (*ListingRepo)(nil)

const listingColumns = `id, company_id, title, description, location, price, type,
	country, address, neighborhood, city, state, postal_code, tax_id, image_path`

// ListingRepo implementación del puerto ListingRepository sobre SQLite.
type ListingRepo struct {
	db *sql.DB
}

// NewListingRepository construye el adaptador de persistencia para anuncios.
func NewListingRepository(db *sql.DB) *ListingRepo {
	return &ListingRepo{db: db}
}

// Create persiste un anuncio en un único INSERT. ImagePath vacío se guarda como NULL.
func (r *ListingRepo) Create(ctx context.Context, l *entity.Listing) error {
	query := `
		INSERT INTO listings (company_id, title, description, location, price, type,
			country, address, neighborhood, city, state, postal_code, tax_id, image_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		l.CompanyID, l.Title, l.Description, l.Location, l.Price.InexactFloat64(), l.Type,
		l.Country, l.Address, l.Neighborhood, l.City, l.State, l.PostalCode, l.TaxID,
		sql.NullString{String: l.ImagePath, Valid: l.ImagePath != ""},
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert listing id: %w", err)
	}
	l.ID = id
	return nil
}

// GetByID obtiene un anuncio por ID. (nil, nil) si no existe.
func (r *ListingRepo) GetByID(ctx context.Context, id int64) (*entity.Listing, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = ?`, id)
	l, err := scanListing(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

// Search aplica los filtros conjuntivos; precios como REAL para comparar numéricamente.
func (r *ListingRepo) Search(ctx context.Context, f repository.ListingFilter) ([]*entity.Listing, error) {
	b := sqlfilter.New(sqlfilter.Question).
		AnyContains(f.Query, "title", "description").
		Contains("city", f.City)
	if f.MinPrice != nil {
		b.GreaterOrEqual("price", f.MinPrice.InexactFloat64())
	}
	if f.MaxPrice != nil {
		b.LessOrEqual("price", f.MaxPrice.InexactFloat64())
	}
	where, args := b.Where()
	return r.list(ctx, `SELECT `+listingColumns+` FROM listings`+where+` ORDER BY id`, args...)
}

// ListByCompany lista los anuncios de una empresa.
func (r *ListingRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Listing, error) {
	where, args := sqlfilter.New(sqlfilter.Question).Equal("company_id", companyID).Where()
	return r.list(ctx, `SELECT `+listingColumns+` FROM listings`+where+` ORDER BY id`, args...)
}

func (r *ListingRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Listing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var list []*entity.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(s rowScanner) (*entity.Listing, error) {
	var l entity.Listing
	var country, address, neighborhood, city, state, postalCode, taxID, imagePath sql.NullString
	err := s.Scan(
		&l.ID, &l.CompanyID, &l.Title, &l.Description, &l.Location, &l.Price, &l.Type,
		&country, &address, &neighborhood, &city, &state, &postalCode, &taxID, &imagePath,
	)
	if err != nil {
		return nil, err
	}
	l.Country = country.String
	l.Address = address.String
	l.Neighborhood = neighborhood.String
	l.City = city.String
	l.State = state.String
	l.PostalCode = postalCode.String
	l.TaxID = taxID.String
	l.ImagePath = imagePath.String
	return &l, nil
}
