package repository

import (
	"github.com/Payphone-Digital/landing-cms/internal/model"
	"github.com/Payphone-Digital/landing-cms/pkg/query"
	"gorm.io/gorm"
)

var emptySpec = query.Spec{}

var activityLogSpec = query.Spec{
	Searchable: []string{"path", "entity"},
	Filterable: map[string]query.Field{
		"method":  query.Upper("method"),
		"entity":  query.Text("entity"),
		"actorId": query.Int("actor_id"),
		"status":  query.Int("status"),
	},
	Sortable: map[string]string{
		"method": "method",
		"entity": "entity",
		"status": "status",
	},
	DefaultOrder: &query.Ordering{Column: "id", Desc: true},
}

type ActivityLogRepository struct {
	baseRepository[model.ActivityLog]
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{baseRepository: newBase[model.ActivityLog](db, "activity_log", activityLogSpec)}
}
