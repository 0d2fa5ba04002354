//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"venue-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errEmpty := errs.Validation("title cannot be empty")

	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: errEmpty, want: errs.KindValidation},
		{name: "wrap しても validation", err: errs.Wrap(errEmpty, "create blackout"), want: errs.KindValidation},
		{name: "fmt.Errorf の %w でも validation", err: fmt.Errorf("outer: %w", errEmpty), want: errs.KindValidation},
		{name: "not found", err: errs.NotFound("booking not found"), want: errs.KindNotFound},
		{name: "permission", err: errs.Permission("missing permission"), want: errs.KindPermission},
		{name: "conflict", err: errs.NewConflict("slot taken"), want: errs.KindConflict},
		{name: "wrap した conflict", err: errs.Wrapf(errs.NewConflict("slot taken"), "venue %d", 1), want: errs.KindConflict},
		{name: "reconciliation", err: errs.ReconciliationInvariant("ledger corrupt"), want: errs.KindReconciliationInvariant},
		{name: "分類なしは internal", err: errors.New("connection reset"), want: errs.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestKindError(t *testing.T) {
	errEmpty := errs.Validation("title cannot be empty")
	wrapped := errs.Wrap(errEmpty, "create blackout")

	t.Run("正常系: 個別のエラーと分類の両方に一致する", func(t *testing.T) {
		assert.True(t, errs.Is(wrapped, errEmpty))
		assert.True(t, errs.Is(wrapped, errs.ErrValidation))
		assert.False(t, errs.Is(wrapped, errs.ErrNotFound))
	})

	t.Run("正常系: 別の validation エラーとは区別される", func(t *testing.T) {
		other := errs.Validation("interval must be positive")
		assert.False(t, errs.Is(wrapped, other))
	})

	t.Run("正常系: Validationf は書式化する", func(t *testing.T) {
		err := errs.Validationf("guest count %d is too large", 5000)
		assert.Equal(t, "guest count 5000 is too large", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	items := []errs.ConflictItem{
		{Kind: "booking", ID: "b-1", Range: "2025-12-20T18:00:00Z/2025-12-20T22:00:00Z"},
		{Kind: "blackout", ID: "x-1", Title: "Christmas", Range: "2025-12-24/2025-12-26"},
	}

	t.Run("正常系: メッセージに衝突を列挙する", func(t *testing.T) {
		err := errs.NewConflict("slot overlaps", items...)
		assert.Equal(t,
			"slot overlaps: booking b-1 (2025-12-20T18:00:00Z/2025-12-20T22:00:00Z), Christmas (2025-12-24/2025-12-26)",
			err.Error())
	})

	t.Run("正常系: 範囲のない項目は括弧を付けない", func(t *testing.T) {
		err := errs.NewConflict("slot overlaps", errs.ConflictItem{Kind: "constraint", ID: "bookings_no_overlap"})
		assert.Equal(t, "slot overlaps: constraint bookings_no_overlap", err.Error())
	})

	t.Run("正常系: 衝突がなければ理由のみ", func(t *testing.T) {
		assert.Equal(t, "slot overlaps", errs.NewConflict("slot overlaps").Error())
	})

	t.Run("正常系: wrap 越しに項目を取り出せる", func(t *testing.T) {
		err := errs.Wrap(errs.NewConflict("slot overlaps", items...), "create booking")
		assert.Equal(t, items, errs.ConflictItemsOf(err))
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("正常系: conflict 以外は nil", func(t *testing.T) {
		assert.Nil(t, errs.ConflictItemsOf(errs.NotFound("missing")))
	})
}

func TestMark(t *testing.T) {
	t.Run("正常系: nil には印そのものを返す", func(t *testing.T) {
		assert.Equal(t, errs.ErrNotFound, errs.Mark(nil, errs.ErrNotFound))
	})

	t.Run("正常系: 印を付けたエラーは印に一致する", func(t *testing.T) {
		err := errs.Mark(errors.New("no rows"), errs.ErrNotFound)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})
}
