package query

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope alias untuk gorm scope.
type Scope = func(*gorm.DB) *gorm.DB

// Predicate kumpulan kondisi WHERE yang digabung dengan AND.
// Predicate kosong cocok dengan semua baris.
type Predicate struct {
	exprs []clause.Expression
}

func (p Predicate) IsEmpty() bool {
	return len(p.exprs) == 0
}

func (p Predicate) Expressions() []clause.Expression {
	return p.exprs
}

// Scope menerapkan predicate ke query gorm.
func (p Predicate) Scope() Scope {
	return func(db *gorm.DB) *gorm.DB {
		for _, expr := range p.exprs {
			db = db.Where(expr)
		}
		return db
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BuildPredicate menerjemahkan search dan filter menjadi kondisi WHERE.
//
// search: OR dari "kolom ILIKE %term%" untuk setiap kolom searchable.
// filter: "field:value" dipisah pada ':' pertama menjadi kondisi sama dengan.
// Filter tanpa ':', dengan value kosong, field tak dikenal, atau value yang
// tidak bisa di-parse diabaikan tanpa error.
func BuildPredicate(params Params, spec Spec) Predicate {
	var p Predicate

	if search := strings.TrimSpace(params.Search); search != "" && len(spec.Searchable) > 0 {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		likes := make([]clause.Expression, 0, len(spec.Searchable))
		for _, column := range spec.Searchable {
			likes = append(likes, clause.Expr{
				SQL:  "? ILIKE ?",
				Vars: []any{clause.Column{Name: column}, pattern},
			})
		}
		if len(likes) == 1 {
			// OrConditions tunggal akan digabung gorm dengan OR ke kondisi
			// berikutnya, jadi ekspresi tunggal dipakai langsung.
			p.exprs = append(p.exprs, likes[0])
		} else {
			p.exprs = append(p.exprs, clause.Or(likes...))
		}
	}

	if expr, ok := buildFilter(params.Filter, spec); ok {
		p.exprs = append(p.exprs, expr)
	}

	return p
}

func buildFilter(filter string, spec Spec) (clause.Expression, bool) {
	name, raw, found := strings.Cut(strings.TrimSpace(filter), ":")
	name = strings.TrimSpace(name)
	raw = strings.TrimSpace(raw)
	if !found || name == "" || raw == "" {
		return nil, false
	}

	field, ok := spec.Filterable[name]
	if !ok {
		return nil, false
	}

	value, ok := field.Parse(raw)
	if !ok {
		return nil, false
	}

	return clause.Eq{Column: clause.Column{Name: field.Column}, Value: value}, true
}
