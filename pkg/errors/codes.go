package errors

// Code represents a machine-readable error code for categorizing SDK errors.
// Error codes follow the pattern CATEGORY_XXX where CATEGORY is a short
// identifier (e.g., VAL, CAT) and XXX is a three-digit numeric code.
//
// Error codes are designed to be:
//   - Stable: Codes do not change once assigned
//   - Unique: Each error condition has a distinct code
//   - Searchable: Codes can be used to find documentation and solutions
//   - Machine-readable: Suitable for automated error handling
type Code string

// Error code categories and their ranges:
//
//	VAL_xxx - Validation errors (400 Bad Request)
//	NF_xxx  - Not found errors (404 Not Found)
//	CAT_xxx - Catalog errors (500 Internal Server Error)
//	INT_xxx - Internal errors (500 Internal Server Error)
const (
	// Validation errors (VAL_xxx) - HTTP 400
	// Used when caller-supplied input fails validation rules.

	// CodeValidation indicates a general validation failure.
	CodeValidation Code = "VAL_001"

	// CodeValidationRequired indicates a required value is missing.
	CodeValidationRequired Code = "VAL_002"

	// Not found errors (NF_xxx) - HTTP 404
	// Used when a requested catalog entity does not exist.

	// CodeNotFoundLocale indicates the requested locale is not present
	// in the catalog.
	CodeNotFoundLocale Code = "NF_001"

	// CodeNotFoundKey indicates the requested message key is not present
	// for any configured locale.
	CodeNotFoundKey Code = "NF_002"

	// Catalog errors (CAT_xxx) - HTTP 500
	// Used when loading or parsing message catalogs fails.

	// CodeCatalogLoad indicates a catalog file could not be read.
	CodeCatalogLoad Code = "CAT_001"

	// CodeCatalogParse indicates a catalog file could not be parsed.
	CodeCatalogParse Code = "CAT_002"

	// Internal errors (INT_xxx) - HTTP 500
	// Used for unexpected internal failures.

	// CodeInternal indicates a general internal error.
	CodeInternal Code = "INT_001"

	// CodeInternalConfiguration indicates a configuration error.
	CodeInternalConfiguration Code = "INT_002"
)

// String returns the string representation of the error code.
func (c Code) String() string {
	return string(c)
}

// Category returns the category prefix of the error code (e.g., "VAL", "CAT").
func (c Code) Category() string {
	s := string(c)
	for i, r := range s {
		if r == '_' {
			return s[:i]
		}
	}
	return s
}
