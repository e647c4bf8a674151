// Package pgerr provides a ready-made custom classifier for PostgreSQL
// errors surfaced by pgx (github.com/jackc/pgx/v5).
//
// The classifier maps SQLSTATE classes onto the HTTP status keys the
// errstatus catalog defines, so database failures render as the same
// user-facing messages as transport failures:
//
//	08xxx (connection exceptions)            → errStatus.503
//	22xxx, 42xxx (data and syntax errors)    → errStatus.400
//	28xxx (invalid authorization)            → errStatus.401
//	42501 (insufficient privilege)           → errStatus.403
//	53300 (too many connections)             → errStatus.429
//	53xxx (other insufficient resources)     → errStatus.503
//	57014 (query canceled)                   → errStatus.408
//	other PgError                            → errStatus.500
//
// A context.DeadlineExceeded anywhere in the chain classifies as
// errStatus.408. Non-PostgreSQL errors produce no opinion, so the
// classifier composes with others under [errstatus.Chain].
package pgerr

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/StatusWise/statuswise-core/pkg/errstatus"
)

// Classifier returns a [errstatus.CustomClassifier] that recognizes pgx
// errors and renders them through the given translate function.
func Classifier(translate errstatus.TranslateFunc) errstatus.CustomClassifier {
	return func(value any) string {
		err, ok := value.(error)
		if !ok {
			return ""
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return translate(errstatus.CodeKey(408))
		}
		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) {
			return ""
		}
		return translate(errstatus.CodeKey(statusFor(pgErr.Code)))
	}
}

// statusFor maps a SQLSTATE code to one of the known HTTP status codes.
func statusFor(sqlstate string) int {
	switch sqlstate {
	case "57014": // query_canceled
		return 408
	case "53300": // too_many_connections
		return 429
	case "42501": // insufficient_privilege
		return 403
	}
	switch {
	case strings.HasPrefix(sqlstate, "08"): // connection exceptions
		return 503
	case strings.HasPrefix(sqlstate, "28"): // invalid authorization
		return 401
	case strings.HasPrefix(sqlstate, "22"), strings.HasPrefix(sqlstate, "42"):
		return 400
	case strings.HasPrefix(sqlstate, "53"): // insufficient resources
		return 503
	}
	return 500
}
