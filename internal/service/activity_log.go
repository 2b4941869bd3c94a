package service

import (
	"context"

	"github.com/Payphone-Digital/landing-cms/internal/model"
	ctxutil "github.com/Payphone-Digital/landing-cms/pkg/context"
	"github.com/Payphone-Digital/landing-cms/pkg/logger"
)

type ActivityLogService struct {
	resource[model.ActivityLog]
}

func NewActivityLogService(repo CrudStore[model.ActivityLog]) *ActivityLogService {
	return &ActivityLogService{resource: newResource(repo, "activity log", "Activity log not found")}
}

// Record menyimpan satu entri audit. Gagal simpan hanya di-log, request
// asalnya sudah selesai.
func (s *ActivityLogService) Record(ctx context.Context, entry *model.ActivityLog) error {
	ctx = ctxutil.WithOperation(ctx, "service", "RecordActivity")

	if err := s.store.Create(ctx, entry); err != nil {
		logger.ErrorWithContext(ctx, "Failed to record activity").
			String("method", entry.Method).
			String("path", entry.Path).
			Err(err).
			Log()
		return err
	}
	return nil
}
