package query

import (
	"strconv"
	"strings"
)

// Field kolom yang boleh dipakai di ?filter=field:value beserta parser nilainya.
type Field struct {
	Column string
	Parse  func(raw string) (any, bool)
}

// Text filter kolom string.
func Text(column string) Field {
	return Field{Column: column, Parse: func(raw string) (any, bool) { return raw, true }}
}

// Int filter kolom integer; nilai yang bukan angka diabaikan.
func Int(column string) Field {
	return Field{Column: column, Parse: func(raw string) (any, bool) {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false
		}
		return v, true
	}}
}

// Upper filter kolom enum huruf besar (FACEBOOK, INSTAGRAM, ...).
func Upper(column string) Field {
	return Field{Column: column, Parse: func(raw string) (any, bool) {
		return strings.ToUpper(raw), true
	}}
}

// Spec deklarasi kolom per entitas. Hanya kolom di sini yang pernah
// masuk ke WHERE atau ORDER BY.
type Spec struct {
	Searchable   []string
	Filterable   map[string]Field
	Sortable     map[string]string
	DefaultOrder *Ordering
}

var commonSortable = map[string]string{
	"id":        "id",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func (s Spec) sortColumn(field string) (string, bool) {
	if col, ok := s.Sortable[field]; ok {
		return col, true
	}
	col, ok := commonSortable[field]
	return col, ok
}
