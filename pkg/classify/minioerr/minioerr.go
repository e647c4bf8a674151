// Package minioerr provides a ready-made custom classifier for MinIO /
// S3 errors surfaced by minio-go (github.com/minio/minio-go/v7).
//
// When the S3 error response carries one of the HTTP status codes the
// errstatus catalog knows, that code's key is used directly. Responses
// with other status codes are mapped by their S3 error code:
//
//	NoSuchKey, NoSuchBucket, NoSuchVersion → errStatus.404
//	AccessDenied, AllAccessDisabled        → errStatus.403
//	SlowDown                               → errStatus.429
//	RequestTimeout                         → errStatus.408
//	other error responses                  → errStatus.500
//
// Errors that are not S3 error responses produce no opinion, so the
// classifier composes with others under [errstatus.Chain].
package minioerr

import (
	"github.com/minio/minio-go/v7"

	"github.com/StatusWise/statuswise-core/pkg/errstatus"
)

// Classifier returns a [errstatus.CustomClassifier] that recognizes
// minio-go error responses and renders them through the given translate
// function.
func Classifier(translate errstatus.TranslateFunc) errstatus.CustomClassifier {
	return func(value any) string {
		err, ok := value.(error)
		if !ok {
			return ""
		}
		resp := minio.ToErrorResponse(err)
		if resp.Code == "" && resp.StatusCode == 0 {
			return ""
		}
		for _, known := range errstatus.StatusCodes {
			if resp.StatusCode == known {
				return translate(errstatus.CodeKey(known))
			}
		}
		switch resp.Code {
		case "NoSuchKey", "NoSuchBucket", "NoSuchVersion":
			return translate(errstatus.CodeKey(404))
		case "AccessDenied", "AllAccessDisabled":
			return translate(errstatus.CodeKey(403))
		case "SlowDown":
			return translate(errstatus.CodeKey(429))
		case "RequestTimeout":
			return translate(errstatus.CodeKey(408))
		}
		return translate(errstatus.CodeKey(500))
	}
}
