//go:build integration

// Package containers provides testcontainers-go helpers for integration
// testing the backend error classifiers against real services.
//
// All helpers are gated behind the "integration" build tag so they do not
// pull Docker-related dependencies into unit test builds. Use them
// exclusively from test files that carry the same tag:
//
//	//go:build integration
//
// Each Start* function returns a *Result struct holding the container
// handle and the connection details the corresponding classifier test
// needs. The caller terminates the container when done:
//
//	result, err := containers.StartPostgres(ctx)
//	if err != nil { ... }
//	defer result.Container.Terminate(ctx)
package containers

import (
	"context"
	"fmt"

	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"
	tcneo4j "github.com/testcontainers/testcontainers-go/modules/neo4j"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// Container images and credentials for integration tests. Credentials are
// deliberately weak; the containers are ephemeral and bound to localhost.
const (
	// DefaultPostgresImage is the PostgreSQL image. The Alpine variant
	// keeps pulls small and startup fast.
	DefaultPostgresImage = "docker.io/postgres:16-alpine"

	// DefaultPostgresDatabase is the database created for tests.
	DefaultPostgresDatabase = "statuswise_test"

	// DefaultPostgresUser is the test superuser.
	DefaultPostgresUser = "testuser"

	// DefaultPostgresPassword is the test superuser password.
	DefaultPostgresPassword = "testpassword"

	// DefaultRedisImage is the Redis image.
	DefaultRedisImage = "docker.io/redis:7-alpine"

	// DefaultMinIOImage is the MinIO image.
	DefaultMinIOImage = "docker.io/minio/minio:latest"

	// DefaultMinIOAccessKey is the MinIO root access key.
	DefaultMinIOAccessKey = "minioadmin"

	// DefaultMinIOSecretKey is the MinIO root secret key.
	DefaultMinIOSecretKey = "minioadmin"

	// DefaultNeo4jImage is the Neo4j Community Edition image.
	DefaultNeo4jImage = "docker.io/neo4j:5-community"

	// DefaultNeo4jUsername is the initial Neo4j admin username. Community
	// Edition always starts with "neo4j".
	DefaultNeo4jUsername = "neo4j"

	// DefaultNeo4jPassword is the Neo4j admin password.
	DefaultNeo4jPassword = "testpassword"
)

// PostgresResult holds a started PostgreSQL container and a pgx-compatible
// connection string (sslmode=disable, since testcontainers expose the
// database on localhost without TLS).
type PostgresResult struct {
	Container  *tcpostgres.PostgresContainer
	ConnString string
}

// StartPostgres starts a PostgreSQL 16 container and waits for it to
// accept connections. On failure to retrieve the connection string the
// container is terminated before the error is returned.
func StartPostgres(ctx context.Context) (*PostgresResult, error) {
	container, err := tcpostgres.Run(ctx,
		DefaultPostgresImage,
		tcpostgres.WithDatabase(DefaultPostgresDatabase),
		tcpostgres.WithUsername(DefaultPostgresUser),
		tcpostgres.WithPassword(DefaultPostgresPassword),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, fmt.Errorf("containers: failed to start postgres container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("containers: failed to get postgres connection string: %w", err)
	}

	return &PostgresResult{Container: container, ConnString: connStr}, nil
}

// RedisResult holds a started Redis container and its URI connection
// string (e.g. "redis://localhost:55679/0").
type RedisResult struct {
	Container  *tcredis.RedisContainer
	ConnString string
}

// StartRedis starts a Redis 7 container without authentication.
func StartRedis(ctx context.Context) (*RedisResult, error) {
	container, err := tcredis.Run(ctx, DefaultRedisImage)
	if err != nil {
		return nil, fmt.Errorf("containers: failed to start redis container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("containers: failed to get redis connection string: %w", err)
	}

	return &RedisResult{Container: container, ConnString: connStr}, nil
}

// MinIOResult holds a started MinIO container, its API endpoint, and the
// root credentials.
type MinIOResult struct {
	Container *tcminio.MinioContainer
	Endpoint  string
	AccessKey string
	SecretKey string
}

// StartMinIO starts a MinIO container with the default root credentials.
func StartMinIO(ctx context.Context) (*MinIOResult, error) {
	container, err := tcminio.Run(ctx,
		DefaultMinIOImage,
		tcminio.WithUsername(DefaultMinIOAccessKey),
		tcminio.WithPassword(DefaultMinIOSecretKey),
	)
	if err != nil {
		return nil, fmt.Errorf("containers: failed to start minio container: %w", err)
	}

	endpoint, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("containers: failed to get minio endpoint: %w", err)
	}

	return &MinIOResult{
		Container: container,
		Endpoint:  endpoint,
		AccessKey: DefaultMinIOAccessKey,
		SecretKey: DefaultMinIOSecretKey,
	}, nil
}

// Neo4jResult holds a started Neo4j container, its Bolt URL, and the admin
// credentials.
type Neo4jResult struct {
	Container *tcneo4j.Neo4jContainer
	BoltURL   string
	Username  string
	Password  string
}

// StartNeo4j starts a Neo4j 5 Community container with authentication
// enabled, so credential failures can be provoked deliberately.
func StartNeo4j(ctx context.Context) (*Neo4jResult, error) {
	container, err := tcneo4j.Run(ctx,
		DefaultNeo4jImage,
		tcneo4j.WithAdminPassword(DefaultNeo4jPassword),
	)
	if err != nil {
		return nil, fmt.Errorf("containers: failed to start neo4j container: %w", err)
	}

	boltURL, err := container.BoltUrl(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("containers: failed to get neo4j bolt URL: %w", err)
	}

	return &Neo4jResult{
		Container: container,
		BoltURL:   boltURL,
		Username:  DefaultNeo4jUsername,
		Password:  DefaultNeo4jPassword,
	}, nil
}
