//go:build integration

// Package minioerr_test contains integration tests that provoke real
// S3 errors against a MinIO container via testcontainers-go and verify
// the classifier maps them to the expected status keys. These tests are
// gated behind the "integration" build tag and are executed in CI with
// Docker.
//
// Run locally with:
//
//	go test -v -race -tags=integration ./pkg/classify/minioerr/...
package minioerr_test

import (
	"context"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/StatusWise/statuswise-core/internal/testutil"
	"github.com/StatusWise/statuswise-core/internal/testutil/containers"
	"github.com/StatusWise/statuswise-core/pkg/classify/minioerr"
	"github.com/StatusWise/statuswise-core/pkg/errstatus"
)

// testBucket is created once in SetupSuite for missing-object tests.
const testBucket = "classify-test"

// MinioerrIntegrationSuite provokes real S3 errors against a single
// shared MinIO container and classifies them. The container is started
// once in SetupSuite and terminated in TearDownSuite.
type MinioerrIntegrationSuite struct {
	suite.Suite

	ctx context.Context

	// minioResult holds the started MinIO container so TearDownSuite can
	// terminate it.
	minioResult *containers.MinIOResult

	// client is the minio-go client used to provoke errors.
	client *minio.Client

	// classifier is a fully wired Classifier with the minioerr custom
	// classifier installed, as a caller would use it.
	classifier *errstatus.Classifier
}

// SetupSuite starts a MinIO container, connects a client, creates the
// test bucket, and builds the classifier under test.
func (s *MinioerrIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	result, err := containers.StartMinIO(s.ctx)
	require.NoError(s.T(), err, "failed to start MinIO container")
	s.minioResult = result

	client, err := minio.New(result.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(result.AccessKey, result.SecretKey, ""),
		Secure: false,
	})
	require.NoError(s.T(), err, "failed to create MinIO client")
	s.client = client

	require.NoError(s.T(), client.MakeBucket(s.ctx, testBucket, minio.MakeBucketOptions{}),
		"failed to create test bucket")

	s.classifier = errstatus.New(testutil.Translator(),
		errstatus.WithCustomClassifier(minioerr.Classifier(testutil.Translator())),
	)
}

// TearDownSuite terminates the container.
func (s *MinioerrIntegrationSuite) TearDownSuite() {
	if s.minioResult != nil {
		if err := s.minioResult.Container.Terminate(s.ctx); err != nil {
			s.T().Logf("failed to terminate minio container: %v", err)
		}
	}
}

// TestMinioerrIntegration is the top-level entry point that runs all
// suite tests. It is skipped in short mode (-short flag) to allow fast
// unit test runs without Docker.
func TestMinioerrIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(MinioerrIntegrationSuite))
}

// TestMissingObject_ClassifiesAsNotFound verifies that StatObject on an
// object that does not exist (NoSuchKey) is rendered as a 404 status.
func (s *MinioerrIntegrationSuite) TestMissingObject_ClassifiesAsNotFound() {
	_, err := s.client.StatObject(s.ctx, testBucket, "no-such-object", minio.StatObjectOptions{})
	require.Error(s.T(), err, "StatObject on missing object should fail")

	got := s.classifier.Classify(s.ctx, err)
	assert.Equal(s.T(), testutil.TranslatedKey("errStatus.404"), got)
}

// TestMissingBucket_ClassifiesAsNotFound verifies that StatObject
// against a bucket that does not exist (NoSuchBucket) is rendered as a
// 404 status.
func (s *MinioerrIntegrationSuite) TestMissingBucket_ClassifiesAsNotFound() {
	_, err := s.client.StatObject(s.ctx, "no-such-bucket", "any-object", minio.StatObjectOptions{})
	require.Error(s.T(), err, "StatObject against missing bucket should fail")

	got := s.classifier.Classify(s.ctx, err)
	assert.Equal(s.T(), testutil.TranslatedKey("errStatus.404"), got)
}

// TestBadCredentials_ClassifiesAsForbidden verifies that a request
// signed with wrong credentials (SignatureDoesNotMatch / AccessDenied,
// HTTP 403) is rendered as a 403 status.
func (s *MinioerrIntegrationSuite) TestBadCredentials_ClassifiesAsForbidden() {
	badClient, err := minio.New(s.minioResult.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s.minioResult.AccessKey, "wrong-secret-key", ""),
		Secure: false,
	})
	require.NoError(s.T(), err, "failed to create MinIO client with bad credentials")

	_, err = badClient.StatObject(s.ctx, testBucket, "any-object", minio.StatObjectOptions{})
	require.Error(s.T(), err, "request with bad credentials should fail")

	got := s.classifier.Classify(s.ctx, err)
	assert.Equal(s.T(), testutil.TranslatedKey("errStatus.403"), got)
}
