// Package filename limpia nombres de archivo enviados por el cliente antes de tocar el disco.
package filename

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Secure devuelve una versión del nombre apta para guardar en un directorio plano:
// sin separadores de ruta, sin "..", solo ASCII [A-Za-z0-9_.-] y espacios convertidos en "_".
// Puede devolver "" si no queda nada utilizable; el llamador debe descartar ese archivo.
//
//	Secure("../../etc/passwd")      == "etc_passwd"
//	Secure("Fachada galpão 1.jpg") == "Fachada_galpao_1.jpg"
func Secure(name string) string {
	// NFKD separa las marcas diacríticas; luego se descartan junto con todo lo no ASCII.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), runes.Remove(runes.Predicate(isNonASCII)))
	folded, _, err := transform.String(t, name)
	if err != nil {
		return ""
	}

	folded = strings.NewReplacer("/", " ", `\`, " ").Replace(folded)
	folded = strings.Join(strings.Fields(folded), "_")
	folded = unsafeChars.ReplaceAllString(folded, "")
	return strings.Trim(folded, "._")
}

func isNonASCII(r rune) bool {
	return r > unicode.MaxASCII
}
