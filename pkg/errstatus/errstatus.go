// Package errstatus maps arbitrary error values to human-readable status
// messages for services and frontends on the StatusWise platform.
//
// The classified value can be absent (nil), a plain string, a numeric HTTP
// status code, or a structured Go error. Classification applies a fixed
// priority chain:
//
//  1. Missing-parameters guard (no translate function, or no value holder
//     when reading through a [Computed])
//  2. Abort detection ("aborted" substring in the extracted message)
//  3. Timeout detection ("timeout" substring in the extracted message)
//  4. Exact numeric match against the known HTTP status codes
//  5. First-match substring scan of the known codes, in [StatusCodes] order
//  6. Optional [CustomClassifier] opinion, returned verbatim
//  7. Default status message
//
// The whole chain runs under a recovery guard: a fault anywhere (including
// inside the injected translate or custom classifier callbacks) yields the
// unexpected-error message instead of a panic. The classifier therefore
// always returns a string, never raises.
//
// The substring scan is a heuristic, not a parser. A message such as
// "1500ms" contains "500" and classifies as HTTP 500. This first-match
// behavior is part of the package contract and must not be tightened.
//
// # Translation
//
// Messages are produced through an injected [TranslateFunc] keyed by the
// dotted keys listed in this file ([KeyMissingParameters] and friends, plus
// [CodeKey] for each entry of [StatusCodes]). The [pkg/catalog] package
// provides ready-made translate functions; any key→string closure works.
// The classifier treats the function as total and never validates catalog
// completeness.
//
// # Reactive use
//
// UI-facing callers typically hold the current error in a [Holder] and read
// the status through a [Computed] obtained from [Classifier.Watch]. The
// computed string is recomputed lazily: only on a read after the holder
// changed, and cached until the next change.
//
// # Usage
//
//	c := errstatus.New(catalog.Default().Translator("en"),
//	    errstatus.WithCustomClassifier(errstatus.Chain(
//	        pgerr.Classifier(translate),
//	        grpcerr.Classifier(translate),
//	    )),
//	    errstatus.WithOptions(errstatus.Options{Debug: true}),
//	)
//
//	holder := errstatus.NewHolder()
//	status := c.Watch(holder)
//
//	holder.Set(err)
//	fmt.Println(status.Get(ctx))
package errstatus

import "strconv"

// tracerName is the OpenTelemetry instrumentation scope name for this package.
// It follows the Go module path convention for OTel instrumentation libraries.
const tracerName = "github.com/StatusWise/statuswise-core/pkg/errstatus"

// Catalog keys for the non-code status messages. The host message catalog
// must provide a translation for each of these, plus one per entry of
// [StatusCodes] (see [CodeKey]).
const (
	// KeyMissingParameters is returned when the classifier is missing its
	// required inputs (translate function or value holder).
	KeyMissingParameters = "errStatus.missingParameters"

	// KeyAbortError is returned when the extracted message contains
	// "aborted" (e.g. a canceled request).
	KeyAbortError = "errStatus.abortError"

	// KeyDefaultStatusError is the fallback when no rule matches.
	KeyDefaultStatusError = "errStatus.defaultStatusError"

	// KeyUnexpectedError is returned when classification itself faults.
	KeyUnexpectedError = "errStatus.unexpectedError"
)

// StatusCodes is the fixed, ordered set of HTTP status codes the classifier
// recognizes. The order is significant: the substring scan walks this slice
// front to back and the first match wins.
var StatusCodes = []int{400, 401, 403, 404, 408, 429, 500, 502, 503, 504}

// CodeKey returns the catalog key for an HTTP status code
// (e.g. CodeKey(404) == "errStatus.404").
func CodeKey(code int) string {
	return "errStatus." + strconv.Itoa(code)
}
