package query

import (
	"strings"

	"gorm.io/gorm/clause"
)

// Ordering satu kolom dan arah urutan.
type Ordering struct {
	Column string
	Desc   bool
}

func (o Ordering) Clause() clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc}
}

// Asc shortcut untuk default order.
func Asc(column string) *Ordering {
	return &Ordering{Column: column}
}

// BuildOrdering mem-parse "field:asc|desc". Arah harus persis "asc" atau
// "desc" dan field harus ada di whitelist; selain itu false, tanpa error.
func BuildOrdering(sortBy string, spec Spec) (Ordering, bool) {
	field, direction, found := strings.Cut(strings.TrimSpace(sortBy), ":")
	if !found || field == "" {
		return Ordering{}, false
	}

	var desc bool
	switch direction {
	case "asc":
	case "desc":
		desc = true
	default:
		return Ordering{}, false
	}

	column, ok := spec.sortColumn(field)
	if !ok {
		return Ordering{}, false
	}

	return Ordering{Column: column, Desc: desc}, true
}
