package flash

import (
	"context"
	"errors"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Flash is the one-shot status handed from a mutation to the next render.
type Flash struct {
	Success *string `json:"success"`
	Error   *string `json:"error"`
}

func New(kind Kind, message string) (Flash, error) {
	switch kind {
	case KindSuccess:
		return Flash{Success: &message}, nil
	case KindError:
		return Flash{Error: &message}, nil
	default:
		return Flash{}, ErrUnknownKind
	}
}

func (f Flash) IsEmpty() bool {
	return f.Success == nil && f.Error == nil
}

// Store keeps at most one pending flash per browser session. Pull returns
// the pending flash and clears it; a second Pull returns an empty Flash.
type Store interface {
	Put(ctx context.Context, sessionID string, kind Kind, message string) error

	Pull(ctx context.Context, sessionID string) (Flash, error)
}

var ErrUnknownKind = errors.New("unknown flash kind")
