package dto

import "github.com/shopspring/decimal"

// ListingSearchRequest filtros del dashboard (todos opcionales, en texto tal como llegan).
type ListingSearchRequest struct {
	Query    string `query:"q"`
	City     string `query:"cidade"`
	MinPrice string `query:"preco_min"`
	MaxPrice string `query:"preco_max"`
}

// DraftRequest etapa 1 de creación de anuncio.
type DraftRequest struct {
	Title       string `json:"titulo" form:"titulo"`
	Description string `json:"descricao" form:"descricao"`
	Price       string `json:"preco" form:"preco"`
	Type        string `json:"tipo" form:"tipo"`
}

// DraftResponse borrador guardado en la sesión.
type DraftResponse struct {
	Title       string          `json:"titulo"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Type        string          `json:"tipo"`
}

// LocationRequest etapa final: localización del espacio anunciado.
type LocationRequest struct {
	Country      string `json:"pais" form:"pais"`
	Address      string `json:"endereco" form:"endereco"`
	Neighborhood string `json:"bairro" form:"bairro"`
	City         string `json:"cidade" form:"cidade"`
	State        string `json:"estado" form:"estado"`
	PostalCode   string `json:"cep" form:"cep"`
	TaxID        string `json:"cnpj" form:"cnpj"`
}

// ListingResponse salida de un anuncio.
type ListingResponse struct {
	ID           int64           `json:"id"`
	CompanyID    int64           `json:"company_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Location     string          `json:"location"`
	Price        decimal.Decimal `json:"price"`
	Type         string          `json:"type"`
	Country      string          `json:"country"`
	Address      string          `json:"address"`
	Neighborhood string          `json:"neighborhood"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	PostalCode   string          `json:"postal_code"`
	TaxID        string          `json:"tax_id"`
	ImagePath    string          `json:"image_path,omitempty"`
}

// ListingListResponse lista de anuncios con total.
type ListingListResponse struct {
	Items []ListingResponse `json:"items"`
	Total int               `json:"total"`
}
