package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the machine-checkable category of a rejected operation.
type Kind string

const (
	KindValidation              Kind = "validation"
	KindConflict                Kind = "conflict"
	KindNotFound                Kind = "not_found"
	KindPermission              Kind = "permission"
	KindReconciliationInvariant Kind = "reconciliation_invariant"
	KindInternal                Kind = "internal"
)

// Sentinel markers. Domain errors are marked with exactly one of these.
var (
	ErrValidation              = errors.New("validation failed")
	ErrConflict                = errors.New("conflict")
	ErrNotFound                = errors.New("not found")
	ErrPermission              = errors.New("permission denied")
	ErrReconciliationInvariant = errors.New("reconciliation invariant violated")
)

// kindError is a leaf error that also matches its category sentinel, so both
// errors.Is(err, ErrValidation) and errors.Is(err, ErrEmptyTitle) hold.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string        { return e.msg }
func (e *kindError) Is(target error) bool { return target == e.kind }

func Validation(msg string) error {
	return &kindError{msg: msg, kind: ErrValidation}
}

func Validationf(format string, args ...any) error {
	return &kindError{msg: fmt.Sprintf(format, args...), kind: ErrValidation}
}

func NotFound(msg string) error {
	return &kindError{msg: msg, kind: ErrNotFound}
}

func Permission(msg string) error {
	return &kindError{msg: msg, kind: ErrPermission}
}

func ReconciliationInvariant(msg string) error {
	return &kindError{msg: msg, kind: ErrReconciliationInvariant}
}

func KindOf(err error) Kind {
	var ce *ConflictError
	switch {
	case err == nil:
		return ""
	case As(err, &ce), Is(err, ErrConflict):
		return KindConflict
	case Is(err, ErrValidation):
		return KindValidation
	case Is(err, ErrNotFound):
		return KindNotFound
	case Is(err, ErrPermission):
		return KindPermission
	case Is(err, ErrReconciliationInvariant):
		return KindReconciliationInvariant
	default:
		return KindInternal
	}
}

// ConflictItem names one entity that blocks the requested operation.
type ConflictItem struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Title string `json:"title"`
	Range string `json:"range"`
}

func (c ConflictItem) String() string {
	name := c.Title
	if name == "" {
		name = c.Kind + " " + c.ID
	}
	if c.Range == "" {
		return name
	}
	return name + " (" + c.Range + ")"
}

type ConflictError struct {
	Reason string
	Items  []ConflictItem
}

func NewConflict(reason string, items ...ConflictItem) *ConflictError {
	return &ConflictError{Reason: reason, Items: items}
}

func (e *ConflictError) Error() string {
	if len(e.Items) == 0 {
		return e.Reason
	}
	parts := make([]string, len(e.Items))
	for i, it := range e.Items {
		parts[i] = it.String()
	}
	return e.Reason + ": " + strings.Join(parts, ", ")
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func ConflictItemsOf(err error) []ConflictItem {
	var ce *ConflictError
	if As(err, &ce) {
		return ce.Items
	}
	return nil
}
