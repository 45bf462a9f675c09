package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/anuncios-armazem/internal/domain"
	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
	"github.com/jhoicas/anuncios-armazem/internal/domain/repository"
	"github.com/jhoicas/anuncios-armazem/internal/infrastructure/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(ctx, db))
	return db
}

func createCompany(t *testing.T, repo *sqlite.CompanyRepo, email string) *entity.Company {
	t.Helper()
	c := &entity.Company{Name: "Acme", Email: email, PasswordHash: "hash", Type: entity.CompanyTypeWarehouse}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestMigrate_Idempotente(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, sqlite.Migrate(context.Background(), db))
}

func TestCompanyRepo_CreateYBuscar(t *testing.T) {
	repo := sqlite.NewCompanyRepository(newTestDB(t))
	ctx := context.Background()

	c := createCompany(t, repo, "acme@x.com")
	assert.NotZero(t, c.ID)

	byEmail, err := repo.GetByEmail(ctx, "acme@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, c.ID, byEmail.ID)
	assert.Equal(t, entity.CompanyTypeWarehouse, byEmail.Type)

	byID, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "acme@x.com", byID.Email)

	missing, err := repo.GetByEmail(ctx, "nadie@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCompanyRepo_EmailDuplicado(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewCompanyRepository(db)
	createCompany(t, repo, "acme@x.com")

	err := repo.Create(context.Background(), &entity.Company{Name: "Otra", Email: "acme@x.com", PasswordHash: "h", Type: entity.CompanyTypeClient})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM companies`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestListingRepo_ClaveForanea(t *testing.T) {
	repo := sqlite.NewListingRepository(newTestDB(t))
	err := repo.Create(context.Background(), &entity.Listing{
		CompanyID: 999, Title: "x", Description: "y", Location: "z", Price: decimal.NewFromInt(1), Type: "Warehouse",
	})
	assert.Error(t, err, "company_id inexistente debe fallar")
}

func TestListingRepo_CreateGetYNulos(t *testing.T) {
	db := newTestDB(t)
	company := createCompany(t, sqlite.NewCompanyRepository(db), "acme@x.com")
	repo := sqlite.NewListingRepository(db)
	ctx := context.Background()

	l := &entity.Listing{
		CompanyID: company.ID, Title: "Storage A", Description: "galpão seco",
		Location: "Rua 1, Centro, Springfield - SP, 01000, Brasil",
		Price:    decimal.RequireFromString("100.50"), Type: "Warehouse",
		City: "Springfield", Country: "Brasil", TaxID: "00.000.000/0001-00",
	}
	require.NoError(t, repo.Create(ctx, l))
	require.NotZero(t, l.ID)

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Storage A", got.Title)
	assert.True(t, decimal.RequireFromString("100.50").Equal(got.Price))
	assert.Empty(t, got.ImagePath)

	var isNull bool
	require.NoError(t, db.QueryRow(`SELECT image_path IS NULL FROM listings WHERE id = ?`, l.ID).Scan(&isNull))
	assert.True(t, isNull)

	missing, err := repo.GetByID(ctx, l.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListingRepo_Search(t *testing.T) {
	db := newTestDB(t)
	companies := sqlite.NewCompanyRepository(db)
	c1 := createCompany(t, companies, "a@x.com")
	c2 := createCompany(t, companies, "b@x.com")
	repo := sqlite.NewListingRepository(db)
	ctx := context.Background()

	seed := []*entity.Listing{
		{CompanyID: c1.ID, Title: "Storage A", Description: "seco", City: "Springfield", Price: decimal.NewFromInt(100)},
		{CompanyID: c1.ID, Title: "Galpão", Description: "com doca 50% coberta", City: "Shelbyville", Price: decimal.NewFromInt(200)},
		{CompanyID: c2.ID, Title: "Depósito", Description: "storage frio", City: "Capital City", Price: decimal.NewFromInt(300)},
	}
	for _, l := range seed {
		l.Location, l.Type = "loc", "Warehouse"
		require.NoError(t, repo.Create(ctx, l))
	}

	titles := func(list []*entity.Listing) []string {
		out := make([]string, 0, len(list))
		for _, l := range list {
			out = append(out, l.Title)
		}
		return out
	}

	tests := []struct {
		name   string
		filter repository.ListingFilter
		want   []string
	}{
		{name: "sin filtros", filter: repository.ListingFilter{}, want: []string{"Storage A", "Galpão", "Depósito"}},
		{name: "ciudad por subcadena", filter: repository.ListingFilter{City: "Spring"}, want: []string{"Storage A"}},
		{name: "texto en título o descripción", filter: repository.ListingFilter{Query: "torage"}, want: []string{"Storage A", "Depósito"}},
		{name: "porcentaje literal", filter: repository.ListingFilter{Query: "50%"}, want: []string{"Galpão"}},
		{name: "rango inclusivo", filter: repository.ListingFilter{MinPrice: price("100"), MaxPrice: price("200")}, want: []string{"Storage A", "Galpão"}},
		{name: "mínimo sin resultados", filter: repository.ListingFilter{MinPrice: price("301")}, want: []string{}},
		{name: "combinado", filter: repository.ListingFilter{City: "Spring", MinPrice: price("200")}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(list))
		})
	}

	own, err := repo.ListByCompany(ctx, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Storage A", "Galpão"}, titles(own))
}
