package minioerr_test

import (
	"context"
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"github.com/StatusWise/statuswise-core/internal/testutil"
	"github.com/StatusWise/statuswise-core/pkg/classify/minioerr"
	"github.com/StatusWise/statuswise-core/pkg/errstatus"
)

func TestClassifier(t *testing.T) {
	t.Parallel()
	classify := minioerr.Classifier(testutil.Translator())

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"known status code wins",
			minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404},
			testutil.TranslatedKey("errStatus.404"),
		},
		{
			"access denied",
			minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403},
			testutil.TranslatedKey("errStatus.403"),
		},
		{
			"slow down without status code",
			minio.ErrorResponse{Code: "SlowDown"},
			testutil.TranslatedKey("errStatus.429"),
		},
		{
			"request timeout without status code",
			minio.ErrorResponse{Code: "RequestTimeout"},
			testutil.TranslatedKey("errStatus.408"),
		},
		{
			"unknown s3 code falls to 500",
			minio.ErrorResponse{Code: "EntityTooLarge", StatusCode: 413},
			testutil.TranslatedKey("errStatus.500"),
		},
		{
			"plain error has no opinion",
			errors.New("not an s3 error"),
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestClassifier_NonError(t *testing.T) {
	t.Parallel()
	classify := minioerr.Classifier(testutil.Translator())
	assert.Empty(t, classify(404))
	assert.Empty(t, classify(nil))
}

func TestClassifier_ThroughClassifier(t *testing.T) {
	t.Parallel()
	c := errstatus.New(testutil.Translator(),
		errstatus.WithCustomClassifier(minioerr.Classifier(testutil.Translator())),
	)
	got := c.Classify(context.Background(),
		minio.ErrorResponse{Code: "NoSuchBucket", Message: "The specified bucket does not exist"})
	assert.Equal(t, testutil.TranslatedKey("errStatus.404"), got)
}
