package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/anuncios-armazem/internal/application/dto"
	"github.com/jhoicas/anuncios-armazem/internal/application/usecase"
	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
	"github.com/jhoicas/anuncios-armazem/internal/domain/repository"
)

type mockListingRepo struct {
	mock.Mock
}

func (m *mockListingRepo) Create(ctx context.Context, l *entity.Listing) error {
	return m.Called(ctx, l).Error(0)
}

func (m *mockListingRepo) GetByID(ctx context.Context, id int64) (*entity.Listing, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*entity.Listing)
	return l, args.Error(1)
}

func (m *mockListingRepo) Search(ctx context.Context, f repository.ListingFilter) ([]*entity.Listing, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]*entity.Listing)
	return list, args.Error(1)
}

func (m *mockListingRepo) ListByCompany(ctx context.Context, companyID int64) ([]*entity.Listing, error) {
	args := m.Called(ctx, companyID)
	list, _ := args.Get(0).([]*entity.Listing)
	return list, args.Error(1)
}

func TestSearch_ConstruyeFiltro(t *testing.T) {
	repo := new(mockListingRepo)
	minPrice := decimal.RequireFromString("50.5")
	repo.On("Search", mock.Anything, mock.MatchedBy(func(f repository.ListingFilter) bool {
		return f.Query == "galpão" && f.City == "Spring" &&
			f.MinPrice != nil && f.MinPrice.Equal(minPrice) && f.MaxPrice == nil
	})).Return([]*entity.Listing{{ID: 1, Title: "Storage A", Price: decimal.NewFromInt(100)}}, nil)

	out, err := usecase.NewListingUseCase(repo).Search(context.Background(), dto.ListingSearchRequest{
		Query:    "  galpão ",
		City:     "Spring",
		MinPrice: "50,5",
		MaxPrice: "muito",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "Storage A", out.Items[0].Title)
	repo.AssertExpectations(t)
}

func TestSearch_SinFiltros(t *testing.T) {
	repo := new(mockListingRepo)
	repo.On("Search", mock.Anything, repository.ListingFilter{}).Return(nil, nil)

	out, err := usecase.NewListingUseCase(repo).Search(context.Background(), dto.ListingSearchRequest{})

	require.NoError(t, err)
	assert.Equal(t, 0, out.Total)
	assert.NotNil(t, out.Items)
}

func TestGetByID(t *testing.T) {
	repo := new(mockListingRepo)
	repo.On("GetByID", mock.Anything, int64(1)).Return(&entity.Listing{ID: 1, ImagePath: "a.jpg"}, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, nil)
	repo.On("GetByID", mock.Anything, int64(3)).Return(nil, errors.New("db"))
	uc := usecase.NewListingUseCase(repo)

	got, err := uc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", got.ImagePath)

	got, err = uc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = uc.GetByID(context.Background(), 3)
	assert.Error(t, err)
}

func TestListByCompany(t *testing.T) {
	repo := new(mockListingRepo)
	repo.On("ListByCompany", mock.Anything, int64(9)).Return([]*entity.Listing{{ID: 1}, {ID: 2}}, nil)

	out, err := usecase.NewListingUseCase(repo).ListByCompany(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
}
