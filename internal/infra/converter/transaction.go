package converter

import (
	"fmt"

	"venue-booking/internal/domain/ledger"
	"venue-booking/internal/domain/money"
	"venue-booking/internal/infra/pgstore"
	"venue-booking/internal/pkg/pgconv"
)

func TransactionToInfra(t *ledger.Transaction) pgstore.Transactions {
	return pgstore.Transactions{
		ID:              t.ID(),
		BookingID:       t.BookingID(),
		Direction:       string(t.Direction()),
		Type:            string(t.Type()),
		Amount:          t.Amount().Minor(),
		Mode:            t.Mode(),
		Status:          string(t.Status()),
		Notes:           t.Notes(),
		VendorID:        pgconv.UUIDPtrToPgtype(t.VendorID()),
		PurchaseOrderID: pgconv.UUIDPtrToPgtype(t.PurchaseOrderID()),
		IdempotencyKey:  pgconv.StringPtrToPgtype(t.IdempotencyKey()),
		RequestHash:     t.RequestHash(),
		OccurredAt:      pgconv.TimeToPgtype(t.OccurredAt()),
		CreatedAt:       pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TransactionToDomain(row pgstore.Transactions) (*ledger.Transaction, error) {
	flow, err := ledger.RestoreFlow(
		ledger.Direction(row.Direction),
		ledger.Type(row.Type),
		pgconv.UUIDPtrFromPgtype(row.VendorID),
		pgconv.UUIDPtrFromPgtype(row.PurchaseOrderID),
	)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", row.ID, err)
	}
	return ledger.Reconstruct(
		row.ID, row.BookingID,
		flow,
		money.New(row.Amount),
		row.Mode,
		ledger.Status(row.Status),
		row.Notes,
		pgconv.StringPtrFromPgtype(row.IdempotencyKey),
		row.RequestHash,
		pgconv.TimeFromPgtype(row.OccurredAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func TransactionsToDomain(rows []pgstore.Transactions) ([]*ledger.Transaction, error) {
	result := make([]*ledger.Transaction, len(rows))
	for i, row := range rows {
		t, err := TransactionToDomain(row)
		if err != nil {
			return nil, err
		}
		result[i] = t
	}
	return result, nil
}
