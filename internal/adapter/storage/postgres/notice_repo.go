package postgres

import (
	"context"
	"fmt"

	"custody-ledger/internal/core/domain"
	"custody-ledger/internal/core/ports"
)

// NoticeRepo implements ports.NoticeRepository. The notice trail is
// append-only; nothing updates or deletes rows.
type NoticeRepo struct {
	pool Pool
}

func NewNoticeRepo(pool Pool) *NoticeRepo {
	return &NoticeRepo{pool: pool}
}

// Create appends a notice to the trail.
func (r *NoticeRepo) Create(ctx context.Context, n *domain.Notice) error {
	query := `INSERT INTO notices (id, caller, action, asset, amount, from_addr, to_addr, subject, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		n.ID, n.Caller.Hex(), n.Action,
		hexOrNil(n.Asset), amountOrNil(n.Amount),
		hexOrNil(n.From), hexOrNil(n.To), hexOrNil(n.Subject),
		nullableString(n.Details), n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notice: %w", err)
	}
	return nil
}

// List returns a page of notices, newest first, with the total count of
// rows matching the filters.
func (r *NoticeRepo) List(ctx context.Context, params ports.NoticeListParams) ([]domain.Notice, int64, error) {
	where := ""
	args := []any{}
	if params.Asset != nil {
		args = append(args, params.Asset.Hex())
		where += fmt.Sprintf(" AND asset = $%d", len(args))
	}
	if params.Action != nil {
		args = append(args, *params.Action)
		where += fmt.Sprintf(" AND action = $%d", len(args))
	}

	countQuery := `SELECT COUNT(*) FROM notices WHERE 1=1` + where
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count notices: %w", err)
	}

	args = append(args, params.PageSize, (params.Page-1)*params.PageSize)
	listQuery := fmt.Sprintf(
		`SELECT id, caller, action, asset, amount, from_addr, to_addr, subject, details, created_at
		FROM notices WHERE 1=1%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list notices: %w", err)
	}
	defer rows.Close()

	notices := []domain.Notice{}
	for rows.Next() {
		var (
			n       domain.Notice
			caller  string
			asset   *string
			amount  *int64
			from    *string
			to      *string
			subject *string
			details *string
		)
		if err := rows.Scan(&n.ID, &caller, &n.Action, &asset, &amount, &from, &to, &subject, &details, &n.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan notice: %w", err)
		}
		if n.Caller, err = domain.ParseAddress(caller); err != nil {
			return nil, 0, fmt.Errorf("stored caller invalid: %w", err)
		}
		if n.Asset, err = parseOptional(asset); err != nil {
			return nil, 0, err
		}
		if n.From, err = parseOptional(from); err != nil {
			return nil, 0, err
		}
		if n.To, err = parseOptional(to); err != nil {
			return nil, 0, err
		}
		if n.Subject, err = parseOptional(subject); err != nil {
			return nil, 0, err
		}
		if amount != nil {
			a := uint64(*amount)
			n.Amount = &a
		}
		if details != nil {
			n.Details = *details
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate notices: %w", err)
	}

	return notices, total, nil
}

func hexOrNil(a *domain.Address) *string {
	if a == nil {
		return nil
	}
	h := a.Hex()
	return &h
}

// amountOrNil converts to int64 for the BIGINT column.
func amountOrNil(a *uint64) *int64 {
	if a == nil {
		return nil
	}
	v := int64(*a)
	return &v
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseOptional(s *string) (*domain.Address, error) {
	if s == nil {
		return nil, nil
	}
	a, err := domain.ParseAddress(*s)
	if err != nil {
		return nil, fmt.Errorf("stored address invalid: %w", err)
	}
	return &a, nil
}
