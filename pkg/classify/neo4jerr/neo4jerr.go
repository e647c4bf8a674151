// Package neo4jerr provides a ready-made custom classifier for Neo4j
// errors surfaced by the official Go driver
// (github.com/neo4j/neo4j-go-driver/v5).
//
// Neo4j server errors carry a dotted status code such as
// "Neo.ClientError.Statement.SyntaxError". Mapping:
//
//	Neo.ClientError.Security.Unauthorized      → errStatus.401
//	Neo.ClientError.Security.* (other)         → errStatus.403
//	Neo.ClientError.*                          → errStatus.400
//	Neo.TransientError.*                       → errStatus.503
//	Neo.DatabaseError.* and anything else      → errStatus.500
//
// Errors that are not Neo4j server errors produce no opinion, so the
// classifier composes with others under [errstatus.Chain].
package neo4jerr

import (
	"errors"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"

	"github.com/StatusWise/statuswise-core/pkg/errstatus"
)

// Classifier returns a [errstatus.CustomClassifier] that recognizes Neo4j
// server errors and renders them through the given translate function.
func Classifier(translate errstatus.TranslateFunc) errstatus.CustomClassifier {
	return func(value any) string {
		err, ok := value.(error)
		if !ok {
			return ""
		}
		var neoErr *db.Neo4jError
		if !errors.As(err, &neoErr) {
			return ""
		}
		return translate(errstatus.CodeKey(statusFor(neoErr.Code)))
	}
}

// statusFor maps a Neo4j status code to one of the known HTTP status codes.
func statusFor(code string) int {
	switch {
	case code == "Neo.ClientError.Security.Unauthorized":
		return 401
	case strings.HasPrefix(code, "Neo.ClientError.Security."):
		return 403
	case strings.HasPrefix(code, "Neo.ClientError."):
		return 400
	case strings.HasPrefix(code, "Neo.TransientError."):
		return 503
	}
	return 500
}
