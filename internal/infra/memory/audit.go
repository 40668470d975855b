package memory

import (
	"context"

	"github.com/VaibhaviS123/SafeStay/internal/audit"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type AuditRepository struct {
	s *Store
}

func (r *AuditRepository) SaveAuditLog(ctx context.Context, l *models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l.ID = uint(len(r.s.auditLogs) + 1)
	l.CreatedAt = r.s.now()
	r.s.auditLogs = append(r.s.auditLogs, *l)
	return nil
}

func (r *AuditRepository) ListAuditLogs(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := []models.AuditLog{}
	for i := len(r.s.auditLogs) - 1; i >= 0; i-- {
		l := r.s.auditLogs[i]
		if f.UserID != nil && (l.UserID == nil || *l.UserID != *f.UserID) {
			continue
		}
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		matched = append(matched, l)
	}

	return page(matched, f.Limit, f.Offset), int64(len(matched)), nil
}

var _ audit.Store = (*AuditRepository)(nil)
