// Package rediserr provides a ready-made custom classifier for Redis
// errors surfaced by go-redis (github.com/redis/go-redis/v9).
//
// Mapping:
//
//	redis.Nil (key does not exist)                → errStatus.404
//	redis.ErrPoolTimeout                          → errStatus.429
//	context.DeadlineExceeded                      → errStatus.408
//	LOADING / READONLY / CLUSTERDOWN / MASTERDOWN /
//	TRYAGAIN server replies                       → errStatus.503
//
// Non-Redis errors produce no opinion, so the classifier composes with
// others under [errstatus.Chain].
package rediserr

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/StatusWise/statuswise-core/pkg/errstatus"
)

// unavailablePrefixes are server reply prefixes indicating the instance
// is temporarily unable to serve the command.
var unavailablePrefixes = []string{
	"LOADING", "READONLY", "CLUSTERDOWN", "MASTERDOWN", "TRYAGAIN",
}

// Classifier returns a [errstatus.CustomClassifier] that recognizes
// go-redis errors and renders them through the given translate function.
func Classifier(translate errstatus.TranslateFunc) errstatus.CustomClassifier {
	return func(value any) string {
		err, ok := value.(error)
		if !ok {
			return ""
		}
		switch {
		case errors.Is(err, redis.Nil):
			return translate(errstatus.CodeKey(404))
		case errors.Is(err, redis.ErrPoolTimeout):
			return translate(errstatus.CodeKey(429))
		case errors.Is(err, context.DeadlineExceeded):
			return translate(errstatus.CodeKey(408))
		}
		for _, prefix := range unavailablePrefixes {
			if redis.HasErrorPrefix(err, prefix) {
				return translate(errstatus.CodeKey(503))
			}
		}
		return ""
	}
}
