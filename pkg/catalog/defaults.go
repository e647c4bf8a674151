package catalog

import (
	"github.com/StatusWise/statuswise-core/pkg/errstatus"
)

// builtinEnglish covers the full key surface the classifier consumes:
// the four named keys plus one per entry of [errstatus.StatusCodes].
var builtinEnglish = map[string]string{
	errstatus.KeyMissingParameters:  "The status display is missing required parameters.",
	errstatus.KeyAbortError:         "The request was aborted.",
	errstatus.KeyDefaultStatusError: "Something went wrong. Please try again.",
	errstatus.KeyUnexpectedError:    "An unexpected error occurred.",

	errstatus.CodeKey(400): "The request was invalid.",
	errstatus.CodeKey(401): "You need to sign in to continue.",
	errstatus.CodeKey(403): "You do not have permission to access this resource.",
	errstatus.CodeKey(404): "The requested resource could not be found.",
	errstatus.CodeKey(408): "The request timed out. Please try again.",
	errstatus.CodeKey(429): "Too many requests. Please slow down and try again.",
	errstatus.CodeKey(500): "The server encountered an internal error.",
	errstatus.CodeKey(502): "Received an invalid response from the upstream server.",
	errstatus.CodeKey(503): "The service is temporarily unavailable.",
	errstatus.CodeKey(504): "The upstream server did not respond in time.",
}
