package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
	"github.com/jhoicas/anuncios-armazem/internal/domain/repository"
	"github.com/jhoicas/anuncios-armazem/internal/infrastructure/sqlfilter"
)

var _ repository.ListingRepository = (*ListingRepo)(nil)

const listingColumns = `id, company_id, title, description, location, price, type,
	country, address, neighborhood, city, state, postal_code, tax_id, image_path`

// ListingRepo implementación del puerto ListingRepository sobre PostgreSQL.
type ListingRepo struct {
	pool *pgxpool.Pool
}

// NewListingRepository construye el adaptador de persistencia para anuncios.
func NewListingRepository(pool *pgxpool.Pool) *ListingRepo {
	return &ListingRepo{pool: pool}
}

// Create persiste un anuncio. ImagePath vacío se guarda como NULL.
func (r *ListingRepo) Create(ctx context.Context, l *entity.Listing) error {
	var imagePath *string
	if l.ImagePath != "" {
		imagePath = &l.ImagePath
	}
	query := `
		INSERT INTO listings (company_id, title, description, location, price, type,
			country, address, neighborhood, city, state, postal_code, tax_id, image_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		l.CompanyID, l.Title, l.Description, l.Location, l.Price, l.Type,
		l.Country, l.Address, l.Neighborhood, l.City, l.State, l.PostalCode, l.TaxID, imagePath,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

// GetByID obtiene un anuncio por ID. (nil, nil) si no existe.
func (r *ListingRepo) GetByID(ctx context.Context, id int64) (*entity.Listing, error) {
	l, err := scanListing(r.pool.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

// Search aplica los filtros conjuntivos con parámetros $n.
func (r *ListingRepo) Search(ctx context.Context, f repository.ListingFilter) ([]*entity.Listing, error) {
	b := sqlfilter.New(sqlfilter.Dollar).
		AnyContains(f.Query, "title", "description").
		Contains("city", f.City)
	if f.MinPrice != nil {
		b.GreaterOrEqual("price", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		b.LessOrEqual("price", *f.MaxPrice)
	}
	where, args := b.Where()
	return r.list(ctx, `SELECT `+listingColumns+` FROM listings`+where+` ORDER BY id`, args...)
}

// ListByCompany lista los anuncios de una empresa.
func (r *ListingRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Listing, error) {
	where, args := sqlfilter.New(sqlfilter.Dollar).Equal("company_id", companyID).Where()
	return r.list(ctx, `SELECT `+listingColumns+` FROM listings`+where+` ORDER BY id`, args...)
}

func (r *ListingRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Listing, error) {
	rows, err := r.pool.Query(ctx, query, args...)
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

func scanListing(row pgx.Row) (*entity.Listing, error) {
	var l entity.Listing
	var country, address, neighborhood, city, state, postalCode, taxID, imagePath *string
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.Title, &l.Description, &l.Location, &l.Price, &l.Type,
		&country, &address, &neighborhood, &city, &state, &postalCode, &taxID, &imagePath,
	)
	if err != nil {
		return nil, err
	}
	l.Country = deref(country)
	l.Address = deref(address)
	l.Neighborhood = deref(neighborhood)
	l.City = deref(city)
	l.State = deref(state)
	l.PostalCode = deref(postalCode)
	l.TaxID = deref(taxID)
	l.ImagePath = deref(imagePath)
	return &l, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
