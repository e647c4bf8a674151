// Package grpcerr provides a ready-made custom classifier for gRPC status
// errors (google.golang.org/grpc).
//
// Mapping:
//
//	Canceled                                      → errStatus.abortError
//	InvalidArgument, OutOfRange, FailedPrecondition → errStatus.400
//	Unauthenticated                               → errStatus.401
//	PermissionDenied                              → errStatus.403
//	NotFound                                      → errStatus.404
//	DeadlineExceeded                              → errStatus.408
//	ResourceExhausted                             → errStatus.429
//	Unavailable                                   → errStatus.503
//	everything else (Internal, DataLoss, ...)     → errStatus.500
//
// Errors that do not carry a gRPC status produce no opinion, so the
// classifier composes with others under [errstatus.Chain]. This also
// covers clients whose errors are plain status wrappers, such as the
// qdrant Go client.
package grpcerr

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/StatusWise/statuswise-core/pkg/errstatus"
)

// Classifier returns a [errstatus.CustomClassifier] that recognizes gRPC
// status errors and renders them through the given translate function.
func Classifier(translate errstatus.TranslateFunc) errstatus.CustomClassifier {
	return func(value any) string {
		err, ok := value.(error)
		if !ok {
			return ""
		}
		st, ok := status.FromError(err)
		if !ok {
			return ""
		}
		switch st.Code() {
		case codes.OK:
			return ""
		case codes.Canceled:
			return translate(errstatus.KeyAbortError)
		case codes.InvalidArgument, codes.OutOfRange, codes.FailedPrecondition:
			return translate(errstatus.CodeKey(400))
		case codes.Unauthenticated:
			return translate(errstatus.CodeKey(401))
		case codes.PermissionDenied:
			return translate(errstatus.CodeKey(403))
		case codes.NotFound:
			return translate(errstatus.CodeKey(404))
		case codes.DeadlineExceeded:
			return translate(errstatus.CodeKey(408))
		case codes.ResourceExhausted:
			return translate(errstatus.CodeKey(429))
		case codes.Unavailable:
			return translate(errstatus.CodeKey(503))
		default:
			return translate(errstatus.CodeKey(500))
		}
	}
}
