// Package pdf genera la ficha imprimible de un anuncio con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + tipo          │  Precio + N° anuncio       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCRIPCIÓN                                                 │
//	│  LOCALIZACIÓN: dirección compuesta + desglose                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ANUNCIANTE: empresa + CNPJ                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/anuncios-armazem/internal/application/listing"
	"github.com/jhoicas/anuncios-armazem/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ listing.ListingSheetGenerator = (*MarotoSheetGenerator)(nil)

// MarotoSheetGenerator implementa listing.ListingSheetGenerator usando Maroto v2.
type MarotoSheetGenerator struct{}

// NewMarotoSheetGenerator construye el generador.
func NewMarotoSheetGenerator() *MarotoSheetGenerator { return &MarotoSheetGenerator{} }

// GenerateListingSheet genera el PDF y devuelve sus bytes.
func (g *MarotoSheetGenerator) GenerateListingSheet(_ context.Context, l *entity.Listing, company *entity.Company) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(l.Title, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(l))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(descriptionRows(l.Description)...)
	m.AddRows(locationRow(l))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(advertiserRow(l, company))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + tipo (izq) y precio + número de anuncio (der).
func headerRow(l *entity.Listing) core.Row {
	return row.New(20).Add(
		col.New(8).Add(
			text.New(l.Title, props.Text{
				Style: fontstyle.Bold, Size: 15, Color: colorPrimary, Top: 1,
			}),
			text.New("Tipo: "+nonEmpty(l.Type, "-"), props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(formatBRL(l.Price), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Anúncio nº %d", l.ID), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// descriptionRows: una fila por línea de la descripción.
func descriptionRows(description string) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("DESCRIÇÃO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
		)),
	}
	for _, ln := range strings.Split(description, "\n") {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(ln, props.Text{Size: 9, Top: 1}),
		)))
	}
	return rows
}

func locationRow(l *entity.Listing) core.Row {
	return row.New(22).Add(
		col.New(12).Add(
			text.New("LOCALIZAÇÃO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3,
			}),
			text.New(l.Location, props.Text{Size: 10, Top: 9}),
			text.New(fmt.Sprintf("Bairro: %s   |   Cidade: %s   |   Estado: %s   |   CEP: %s",
				nonEmpty(l.Neighborhood, "-"),
				nonEmpty(l.City, "-"),
				nonEmpty(l.State, "-"),
				nonEmpty(l.PostalCode, "-"),
			), props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
	)
}

func advertiserRow(l *entity.Listing, company *entity.Company) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("ANUNCIANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
			text.New(company.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 7}),
			text.New("CNPJ: "+nonEmpty(l.TaxID, "-"), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatBRL formatea un precio como moneda brasileña.
// Ej: 1234.5 → "R$ 1.234,50"
func formatBRL(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := "R$ " + thousands(intPart) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// thousands inserta puntos de miles en un string numérico sin decimales.
func thousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
