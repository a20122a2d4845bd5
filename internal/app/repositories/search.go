package repositories

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emre/yoklama/internal/pkg/turkish"
)

// filterBuilder accumulates WHERE conditions with numbered placeholders so
// optional filters compose without manual parameter counting.
type filterBuilder struct {
	conds []string
	args  []any
}

// bind registers an argument and returns its placeholder ("$1", "$2", ...).
// Arguments bound for a JOIN condition and those bound for WHERE filters
// share the same numbering.
func (b *filterBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// add appends one AND-combined condition.
func (b *filterBuilder) add(cond string) {
	b.conds = append(b.conds, cond)
}

// clause renders the accumulated conditions for appending after "WHERE 1=1".
func (b *filterBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " AND " + strings.Join(b.conds, " AND ")
}

// foldedColumn renders the store-side Turkish fold of a column: the six
// diacritic letters replaced with their ASCII equivalents, then lowercased.
// It must stay in lockstep with turkish.Fold, which normalizes the query side.
func foldedColumn(col string) string {
	expr := col
	for _, pair := range [][2]string{
		{"ü", "u"}, {"ö", "o"}, {"ş", "s"}, {"ç", "c"}, {"ğ", "g"}, {"ı", "i"},
	} {
		expr = fmt.Sprintf("REPLACE(%s, '%s', '%s')", expr, pair[0], pair[1])
	}
	return "LOWER(" + expr + ")"
}

// turkishNameMatch builds the dual substring match over a name and surname
// column: plain case-insensitive ILIKE, plus the folded comparison that makes
// dotted/dotless-I and other diacritics search-insensitive.
func turkishNameMatch(b *filterBuilder, nameCol, surnameCol, term string) string {
	like := "%" + term + "%"
	folded := "%" + turkish.Fold(term) + "%"
	return fmt.Sprintf("(%s ILIKE %s OR %s ILIKE %s OR %s LIKE %s OR %s LIKE %s)",
		nameCol, b.bind(like),
		surnameCol, b.bind(like),
		foldedColumn(nameCol), b.bind(folded),
		foldedColumn(surnameCol), b.bind(folded),
	)
}
