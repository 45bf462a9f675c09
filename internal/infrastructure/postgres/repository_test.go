package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/anuncios-armazem/internal/domain"
	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
	"github.com/jhoicas/anuncios-armazem/internal/domain/repository"
	"github.com/jhoicas/anuncios-armazem/internal/infrastructure/postgres"
	"github.com/jhoicas/anuncios-armazem/pkg/config"
)

// newTestPool conecta a TEST_DATABASE_URL y deja las tablas vacías.
// Sin la variable el test se salta; con ella vacía companies y listings antes de cada test.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE listings, companies RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func createCompany(t *testing.T, repo *postgres.CompanyRepo, email string) *entity.Company {
	t.Helper()
	c := &entity.Company{Name: "Acme", Email: email, PasswordHash: "hash", Type: entity.CompanyTypeWarehouse}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCompanyRepo_ReturningIDYDuplicado(t *testing.T) {
	pool := newTestPool(t)
	repo := postgres.NewCompanyRepository(pool)
	ctx := context.Background()

	c := createCompany(t, repo, "acme@x.com")
	assert.Equal(t, int64(1), c.ID)

	err := repo.Create(ctx, &entity.Company{Name: "Otra", Email: "acme@x.com", PasswordHash: "h", Type: entity.CompanyTypeClient})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&n))
	assert.Equal(t, 1, n)

	got, err := repo.GetByEmail(ctx, "acme@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.ID, got.ID)

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListingRepo_NulosYDecimal(t *testing.T) {
	pool := newTestPool(t)
	company := createCompany(t, postgres.NewCompanyRepository(pool), "acme@x.com")
	repo := postgres.NewListingRepository(pool)
	ctx := context.Background()

	l := &entity.Listing{
		CompanyID: company.ID, Title: "Storage A", Description: "seco", Location: "loc",
		Price: decimal.RequireFromString("100.50"), Type: "Warehouse", City: "Springfield",
	}
	require.NoError(t, repo.Create(ctx, l))
	require.NotZero(t, l.ID)

	var isNull bool
	require.NoError(t, pool.QueryRow(ctx, `SELECT image_path IS NULL FROM listings WHERE id = $1`, l.ID).Scan(&isNull))
	assert.True(t, isNull)

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, decimal.RequireFromString("100.50").Equal(got.Price))
	assert.Empty(t, got.ImagePath)
	assert.Empty(t, got.Country)
	assert.Equal(t, "Springfield", got.City)

	err = repo.Create(ctx, &entity.Listing{CompanyID: 999, Title: "x", Description: "y", Location: "z", Price: decimal.NewFromInt(1), Type: "W"})
	assert.Error(t, err, "company_id inexistente debe fallar")
}

func TestListingRepo_SearchConParametrosDollar(t *testing.T) {
	pool := newTestPool(t)
	companies := postgres.NewCompanyRepository(pool)
	c1 := createCompany(t, companies, "a@x.com")
	c2 := createCompany(t, companies, "b@x.com")
	repo := postgres.NewListingRepository(pool)
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
		{name: "todos los parámetros", filter: repository.ListingFilter{Query: "seco", City: "Spring", MinPrice: price("50"), MaxPrice: price("100")}, want: []string{"Storage A"}},
		{name: "combinado sin resultados", filter: repository.ListingFilter{City: "Spring", MinPrice: price("200")}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := repo.Search(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(list))
		})
	}

	own, err := repo.ListByCompany(ctx, c2.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Depósito"}, titles(own))
}
