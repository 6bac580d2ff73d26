package commands

import (
	"order-followup/internal/infra"
	"order-followup/internal/pkg/errs"
)

var sentinels = []error{
	errs.ErrValidation,
	errs.ErrNotFound,
	errs.ErrAlreadyResolved,
	errs.ErrAmbiguousPriority,
	errs.ErrInconsistentRule,
	errs.ErrTransient,
}

// classify marks err with the sentinel the handler layer maps to a status code.
// Anything unrecognized is treated as a transient store failure.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, s := range sentinels {
		if errs.Is(err, s) {
			return err
		}
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrAlreadyResolved)
	default:
		return errs.Mark(err, errs.ErrTransient)
	}
}
