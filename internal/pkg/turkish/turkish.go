package turkish

import "strings"

// folder maps the six Turkish diacritic letters to their ASCII equivalents.
// Only the lowercase forms are mapped; Fold lowercases its input first, and
// the SQL side applies the same lowercase-only replacement chain, so the two
// sides agree on the folded form.
var folder = strings.NewReplacer(
	"ü", "u",
	"ö", "o",
	"ş", "s",
	"ç", "c",
	"ğ", "g",
	"ı", "i",
)

// Fold lowercases s and folds Turkish diacritics to ASCII. The result is a
// fixed point: Fold(Fold(s)) == Fold(s), which keeps search symmetric when the
// stored value is already plain ASCII.
func Fold(s string) string {
	return folder.Replace(strings.ToLower(s))
}
