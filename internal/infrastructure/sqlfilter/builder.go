// Package sqlfilter arma cláusulas WHERE conjuntivas con parámetros enlazados.
// Los nombres de columna siempre vienen del código; los valores del usuario
// nunca se concatenan en el SQL, solo viajan como argumentos.
package sqlfilter

import (
	"strconv"
	"strings"
)

// Placeholder estilo de marcador de parámetro según el driver.
type Placeholder int

const (
	// Question usa "?" (sqlite, mysql).
	Question Placeholder = iota
	// Dollar usa "$1, $2, ..." (postgres).
	Dollar
)

// likeEscaper escapa los comodines de LIKE para que la búsqueda sea por subcadena literal.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Builder acumula condiciones unidas por AND.
type Builder struct {
	placeholder Placeholder
	conds       []string
	args        []any
}

// New crea un builder vacío.
func New(p Placeholder) *Builder {
	return &Builder{placeholder: p}
}

// next devuelve el marcador para el siguiente argumento y lo registra.
func (b *Builder) next(v any) string {
	b.args = append(b.args, v)
	if b.placeholder == Dollar {
		return "$" + strconv.Itoa(len(b.args))
	}
	return "?"
}

// Contains agrega "column LIKE %value%". No hace nada si value está vacío.
func (b *Builder) Contains(column, value string) *Builder {
	return b.AnyContains(value, column)
}

// AnyContains agrega "(c1 LIKE %value% OR c2 LIKE %value% ...)". No hace nada si value está vacío.
func (b *Builder) AnyContains(value string, columns ...string) *Builder {
	if value == "" || len(columns) == 0 {
		return b
	}
	pattern := "%" + likeEscaper.Replace(value) + "%"
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, col+" LIKE "+b.next(pattern)+` ESCAPE '\'`)
	}
	if len(parts) == 1 {
		b.conds = append(b.conds, parts[0])
		return b
	}
	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
	return b
}

// Equal agrega "column = value".
func (b *Builder) Equal(column string, value any) *Builder {
	b.conds = append(b.conds, column+" = "+b.next(value))
	return b
}

// GreaterOrEqual agrega "column >= value" (límite inclusivo).
func (b *Builder) GreaterOrEqual(column string, value any) *Builder {
	b.conds = append(b.conds, column+" >= "+b.next(value))
	return b
}

// LessOrEqual agrega "column <= value" (límite inclusivo).
func (b *Builder) LessOrEqual(column string, value any) *Builder {
	b.conds = append(b.conds, column+" <= "+b.next(value))
	return b
}

// Where devuelve " WHERE ..." (o "" sin condiciones) y los argumentos en orden.
func (b *Builder) Where() (string, []any) {
	if len(b.conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(b.conds, " AND "), b.args
}

// Len número de condiciones acumuladas.
func (b *Builder) Len() int { return len(b.conds) }
