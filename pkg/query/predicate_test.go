package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type article struct {
	ID         uint
	Title      string
	Body       string
	Status     string
	CategoryID uint
}

var articleSpec = Spec{
	Searchable: []string{"title", "body"},
	Filterable: map[string]Field{
		"status":     Text("status"),
		"categoryId": Int("category_id"),
	},
	Sortable: map[string]string{"title": "title"},
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=cms password=cms dbname=cms sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func toSQL(t *testing.T, p Predicate) string {
	t.Helper()
	db := dryRunDB(t)
	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var out []article
		return tx.Model(&article{}).Scopes(p.Scope()).Find(&out)
	})
}

func TestBuildPredicate_Empty(t *testing.T) {
	p := BuildPredicate(Params{}, articleSpec)
	assert.True(t, p.IsEmpty())
	assert.NotContains(t, toSQL(t, p), "WHERE")
}

func TestBuildPredicate_SearchIsCaseInsensitiveOr(t *testing.T) {
	p := BuildPredicate(Params{Search: "admin"}, articleSpec)
	require.Len(t, p.Expressions(), 1)

	sql := toSQL(t, p)
	assert.Contains(t, sql, `"title" ILIKE '%admin%'`)
	assert.Contains(t, sql, `"body" ILIKE '%admin%'`)
	assert.Contains(t, sql, " OR ")
}

func TestBuildPredicate_SearchEscapesWildcards(t *testing.T) {
	p := BuildPredicate(Params{Search: "50%_off"}, Spec{Searchable: []string{"title"}})
	assert.Contains(t, toSQL(t, p), `'%50\%\_off%'`)
}

func TestBuildPredicate_SearchWithoutSearchableFields(t *testing.T) {
	p := BuildPredicate(Params{Search: "admin"}, Spec{})
	assert.True(t, p.IsEmpty())
}

func TestBuildPredicate_SingleSearchFieldAndFilterAreANDed(t *testing.T) {
	spec := Spec{
		Searchable: []string{"title"},
		Filterable: map[string]Field{"status": Text("status")},
	}
	p := BuildPredicate(Params{Search: "news", Filter: "status:published"}, spec)
	require.Len(t, p.Expressions(), 2)

	sql := toSQL(t, p)
	assert.Contains(t, sql, `"title" ILIKE '%news%' AND "status" = 'published'`)
	assert.NotContains(t, sql, " OR ")
}

func TestBuildPredicate_Filter(t *testing.T) {
	tests := []struct {
		name    string
		filter  string
		wantSQL string
	}{
		{"text", "status:published", `"status" = 'published'`},
		{"int", "categoryId:5", `"category_id" = 5`},
		{"split on first colon", "status:a:b", `"status" = 'a:b'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPredicate(Params{Filter: tt.filter}, articleSpec)
			require.Len(t, p.Expressions(), 1)
			assert.Contains(t, toSQL(t, p), tt.wantSQL)
		})
	}
}

func TestBuildPredicate_IgnoresUnusableFilter(t *testing.T) {
	for _, filter := range []string{"status", "status:", ":published", "unknown:x", "categoryId:abc", "password:secret"} {
		t.Run(filter, func(t *testing.T) {
			p := BuildPredicate(Params{Filter: filter}, articleSpec)
			assert.True(t, p.IsEmpty())
		})
	}
}
