package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/anuncios-armazem/internal/application/dto"
	"github.com/jhoicas/anuncios-armazem/internal/application/listing"
	"github.com/jhoicas/anuncios-armazem/internal/application/usecase"
	"github.com/jhoicas/anuncios-armazem/internal/domain"
	"github.com/jhoicas/anuncios-armazem/pkg/logger"
)

// ListingHandler maneja la consulta de anuncios: dashboard, perfil, detalle y ficha PDF.
type ListingHandler struct {
	uc      *usecase.ListingUseCase
	sheetUC *listing.SheetUseCase
	log     *logger.Logger
}

// NewListingHandler construye el handler.
func NewListingHandler(uc *usecase.ListingUseCase, sheetUC *listing.SheetUseCase, log *logger.Logger) *ListingHandler {
	return &ListingHandler{uc: uc, sheetUC: sheetUC, log: log}
}

// Dashboard godoc
// @Summary      Buscar anuncios
// @Description  Filtros opcionales y conjuntivos. Cotas de precio inválidas se ignoran.
// @Tags         listings
// @Produce      json
// @Param        q          query  string  false  "subcadena en título o descripción"
// @Param        cidade     query  string  false  "subcadena en la ciudad"
// @Param        preco_min  query  string  false  "precio mínimo (inclusive)"
// @Param        preco_max  query  string  false  "precio máximo (inclusive)"
// @Success      200  {object}  dto.PageResponse
// @Success      302  "sin sesión, redirige a /login"
// @Router       /dashboard [get]
func (h *ListingHandler) Dashboard(c *fiber.Ctx) error {
	var in dto.ListingSearchRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msgRequired})
	}
	out, err := h.uc.Search(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.PageResponse{Page: "dashboard", Company: GetCompany(c), Data: out})
}

// Profile godoc
// @Summary      Perfil de la empresa
// @Description  Anuncios publicados por la empresa logueada y su total.
// @Tags         listings
// @Produce      json
// @Success      200  {object}  dto.PageResponse
// @Router       /perfil [get]
func (h *ListingHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.UserContext(), GetCompanyID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.PageResponse{Page: "perfil", Company: GetCompany(c), Data: out})
}

// GetByID godoc
// @Summary      Detalle de anuncio
// @Tags         listings
// @Produce      json
// @Param        id   path  int  true  "ID del anuncio"
// @Success      200  {object}  dto.ListingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /anuncio/{id} [get]
func (h *ListingHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return writeError(c, h.log, domain.ErrNotFound)
	}
	out, err := h.uc.GetByID(c.UserContext(), int64(id))
	if err != nil {
		return writeError(c, h.log, err)
	}
	if out == nil {
		return writeError(c, h.log, domain.ErrNotFound)
	}
	return c.JSON(out)
}

// Sheet godoc
// @Summary      Ficha PDF del anuncio
// @Tags         listings
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del anuncio"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /anuncio/{id}/ficha [get]
func (h *ListingHandler) Sheet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return writeError(c, h.log, domain.ErrNotFound)
	}
	pdfBytes, filename, err := h.sheetUC.DownloadSheet(c.UserContext(), int64(id))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(pdfBytes)
}
