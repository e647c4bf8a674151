//go:build integration

// Package pgerr_test contains integration tests that provoke real
// PostgreSQL errors via testcontainers-go and verify the classifier maps
// them to the expected status keys. These tests are gated behind the
// "integration" build tag and are executed in CI with Docker.
//
// Run locally with:
//
//	go test -v -race -tags=integration ./pkg/classify/pgerr/...
package pgerr_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/StatusWise/statuswise-core/internal/testutil"
	"github.com/StatusWise/statuswise-core/internal/testutil/containers"
	"github.com/StatusWise/statuswise-core/pkg/classify/pgerr"
	"github.com/StatusWise/statuswise-core/pkg/errstatus"
)

// PgerrIntegrationSuite provokes real PostgreSQL errors against a single
// shared container and classifies them. The container is started once in
// SetupSuite and terminated in TearDownSuite.
type PgerrIntegrationSuite struct {
	suite.Suite

	ctx context.Context

	// pgResult holds the started PostgreSQL container so TearDownSuite
	// can terminate it.
	pgResult *containers.PostgresResult

	// pool is the pgx connection pool used to provoke errors.
	pool *pgxpool.Pool

	// classifier is a fully wired Classifier with the pgerr custom
	// classifier installed, as a caller would use it.
	classifier *errstatus.Classifier
}

// SetupSuite starts a PostgreSQL container, connects a pool, and builds
// the classifier under test.
func (s *PgerrIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	result, err := containers.StartPostgres(s.ctx)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgResult = result

	pool, err := pgxpool.New(s.ctx, result.ConnString)
	require.NoError(s.T(), err, "failed to create pgx pool")
	s.pool = pool

	s.classifier = errstatus.New(testutil.Translator(),
		errstatus.WithCustomClassifier(pgerr.Classifier(testutil.Translator())),
	)
}

// TearDownSuite closes the pool and terminates the container.
func (s *PgerrIntegrationSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.pgResult != nil {
		if err := s.pgResult.Container.Terminate(s.ctx); err != nil {
			s.T().Logf("failed to terminate postgres container: %v", err)
		}
	}
}

// TestPgerrIntegration is the top-level entry point that runs all suite
// tests. It is skipped in short mode (-short flag) to allow fast unit
// test runs without Docker.
func TestPgerrIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PgerrIntegrationSuite))
}

// TestMissingTable_ClassifiesAsBadRequest verifies that querying a table
// that does not exist (SQLSTATE 42P01) is rendered as a 400 status.
func (s *PgerrIntegrationSuite) TestMissingTable_ClassifiesAsBadRequest() {
	_, err := s.pool.Exec(s.ctx, `SELECT * FROM no_such_table`)
	require.Error(s.T(), err, "query against missing table should fail")

	got := s.classifier.Classify(s.ctx, err)
	assert.Equal(s.T(), testutil.TranslatedKey("errStatus.400"), got)
}

// TestSyntaxError_ClassifiesAsBadRequest verifies that a malformed
// statement (SQLSTATE 42601) is rendered as a 400 status.
func (s *PgerrIntegrationSuite) TestSyntaxError_ClassifiesAsBadRequest() {
	_, err := s.pool.Exec(s.ctx, `SELEC 1`)
	require.Error(s.T(), err, "malformed statement should fail")

	got := s.classifier.Classify(s.ctx, err)
	assert.Equal(s.T(), testutil.TranslatedKey("errStatus.400"), got)
}

// TestDataError_ClassifiesAsBadRequest verifies that a data exception
// (division by zero, SQLSTATE 22012) is rendered as a 400 status.
func (s *PgerrIntegrationSuite) TestDataError_ClassifiesAsBadRequest() {
	_, err := s.pool.Exec(s.ctx, `SELECT 1/0`)
	require.Error(s.T(), err, "division by zero should fail")

	got := s.classifier.Classify(s.ctx, err)
	assert.Equal(s.T(), testutil.TranslatedKey("errStatus.400"), got)
}

// TestContextDeadline_ClassifiesAsTimeout verifies that a query cut off
// by an expired context is rendered as a 408 status.
func (s *PgerrIntegrationSuite) TestContextDeadline_ClassifiesAsTimeout() {
	ctx, cancel := context.WithTimeout(s.ctx, 1*time.Nanosecond)
	defer cancel()
	// Allow the timeout to take effect.
	time.Sleep(1 * time.Millisecond)

	_, err := s.pool.Exec(ctx, `SELECT pg_sleep(10)`)
	require.Error(s.T(), err, "query with expired context should fail")

	got := s.classifier.Classify(s.ctx, err)
	assert.Equal(s.T(), testutil.TranslatedKey("errStatus.408"), got)
}
