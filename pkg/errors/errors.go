// Package errors provides standardized error types and error handling
// utilities for the StatusWise SDK. It defines the error codes used by the
// catalog, configuration, and classification packages, together with helper
// functions for creating, wrapping, and inspecting errors.
//
// Note the distinction between this package and [pkg/errstatus]: the values
// classified by errstatus are data flowing through the SDK, while the errors
// defined here are faults of the SDK itself (a catalog file that does not
// parse, a configuration value out of range, an unknown locale).
//
// # Error Codes
//
// Each error carries a machine-readable code (e.g., "CAT_001") following the
// pattern CATEGORY_XXX, where CATEGORY is a short identifier and XXX a
// three-digit numeric code. Codes are stable once assigned.
//
// # Usage
//
// Create a new error with context:
//
//	err := errors.New(errors.CodeValidation, "locale must not be empty")
//
// Wrap an existing error:
//
//	err := errors.Wrap(err, errors.CodeCatalogParse, "failed to parse catalog file")
//
// Check error category:
//
//	if errors.IsNotFound(err) {
//	    // fall back to the default locale
//	}
//
// Extract error details for logging:
//
//	if e, ok := errors.AsError(err); ok {
//	    logger.Error("catalog load failed",
//	        "code", e.Code,
//	        "message", e.Message,
//	    )
//	}
package errors
