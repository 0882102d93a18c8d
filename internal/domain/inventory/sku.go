package inventory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var skuCaser = cases.Upper(language.Und)

// NormalizeSKU lleva un SKU a su forma canónica: sin espacios laterales y en
// mayúsculas (casefold Unicode, no solo ASCII). El constraint único de la
// base de datos opera sobre esta forma, así "abc-01", " ABC-01 " y "Abc-01"
// colisionan entre sí.
func NormalizeSKU(sku string) string {
	return skuCaser.String(strings.TrimSpace(sku))
}
