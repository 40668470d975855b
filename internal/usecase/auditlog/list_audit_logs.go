package auditlog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/audit"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ListInput struct {
	Action string
	Limit  int
	Offset int
}

type Page struct {
	Items  []models.AuditLog `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// ListAuditLogs returns the caller's own audit trail, newest first.
type ListAuditLogs struct {
	store audit.Store
}

func NewListAuditLogs(store audit.Store) *ListAuditLogs {
	return &ListAuditLogs{store: store}
}

func (uc *ListAuditLogs) Execute(ctx context.Context, userID uuid.UUID, in ListInput) (*Page, error) {
	if in.Limit == 0 {
		in.Limit = DefaultPageSize
	}
	if in.Limit < 0 || in.Limit > MaxPageSize {
		return nil, httperr.Validation("invalid_limit", "Limit must be between 1 and 100.")
	}
	if in.Offset < 0 {
		return nil, httperr.Validation("invalid_offset", "Offset cannot be negative.")
	}

	items, total, err := uc.store.ListAuditLogs(ctx, audit.Filter{
		UserID: &userID,
		Action: strings.TrimSpace(in.Action),
		Limit:  in.Limit,
		Offset: in.Offset,
	})
	if err != nil {
		return nil, httperr.Infra(err)
	}
	if items == nil {
		items = []models.AuditLog{}
	}

	return &Page{Items: items, Total: total, Limit: in.Limit, Offset: in.Offset}, nil
}
