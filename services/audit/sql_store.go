package audit

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"github.com/sqlc-dev/pqtype"

	db "github.com/CrestPay/CrestPay-Backend/db/sqlc"
)

type SQLStore struct {
	q *db.Queries
}

func NewSQLStore(q *db.Queries) *SQLStore {
	return &SQLStore{q: q}
}

func (s *SQLStore) Append(ctx context.Context, event Event) error {
	_, err := s.q.CreateAuditEvent(ctx, db.CreateAuditEventParams{
		AggregateID: event.AggregateID,
		CommandName: event.CommandName,
		Command: pqtype.NullRawMessage{
			RawMessage: event.Command,
			Valid:      len(event.Command) > 0,
		},
		ResourceName: sql.NullString{String: event.ResourceName, Valid: event.ResourceName != ""},
		TotalBefore:  nullDecimalString(event.TotalBefore),
		TotalAmount:  nullDecimalString(event.TotalAmount),
		TotalAfter:   nullDecimalString(event.TotalAfter),
	})
	return err
}

func (s *SQLStore) ListByAggregate(ctx context.Context, aggregateID string) ([]Event, error) {
	rows, err := s.q.ListAuditEventsByAggregate(ctx, aggregateID)
	if err != nil {
		return nil, err
	}
	out := make([]Event, 0, len(rows))
	for _, row := range rows {
		event := Event{
			ID:           row.ID,
			AggregateID:  row.AggregateID,
			CommandName:  row.CommandName,
			ResourceName: row.ResourceName.String,
			CreatedAt:    row.CreatedAt,
		}
		if row.Command.Valid {
			event.Command = row.Command.RawMessage
		}
		if event.TotalBefore, err = parseNullDecimal(row.TotalBefore); err != nil {
			return nil, err
		}
		if event.TotalAmount, err = parseNullDecimal(row.TotalAmount); err != nil {
			return nil, err
		}
		if event.TotalAfter, err = parseNullDecimal(row.TotalAfter); err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, nil
}

func nullDecimalString(d decimal.NullDecimal) sql.NullString {
	if !d.Valid {
		return sql.NullString{}
	}
	return sql.NullString{String: d.Decimal.StringFixed(2), Valid: true}
}

func parseNullDecimal(s sql.NullString) (decimal.NullDecimal, error) {
	if !s.Valid {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}
