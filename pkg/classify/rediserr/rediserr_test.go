package rediserr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/StatusWise/statuswise-core/internal/testutil"
	"github.com/StatusWise/statuswise-core/pkg/classify/rediserr"
	"github.com/StatusWise/statuswise-core/pkg/errstatus"
)

// serverError mimics a raw Redis server reply; it satisfies the
// redis.Error interface the same way proto.RedisError does.
type serverError string

func (e serverError) Error() string { return string(e) }
func (serverError) RedisError()     {}

func TestClassifier(t *testing.T) {
	t.Parallel()
	classify := rediserr.Classifier(testutil.Translator())

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing key", redis.Nil, testutil.TranslatedKey("errStatus.404")},
		{"wrapped missing key", fmt.Errorf("get session: %w", redis.Nil), testutil.TranslatedKey("errStatus.404")},
		{"pool timeout", redis.ErrPoolTimeout, testutil.TranslatedKey("errStatus.429")},
		{"context deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), testutil.TranslatedKey("errStatus.408")},
		{"loading dataset", serverError("LOADING Redis is loading the dataset in memory"), testutil.TranslatedKey("errStatus.503")},
		{"readonly replica", serverError("READONLY You can't write against a read only replica."), testutil.TranslatedKey("errStatus.503")},
		{"cluster down", serverError("CLUSTERDOWN The cluster is down"), testutil.TranslatedKey("errStatus.503")},
		{"unrelated server error", serverError("ERR unknown command"), ""},
		{"plain error", errors.New("not redis"), ""},
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
	classify := rediserr.Classifier(testutil.Translator())
	assert.Empty(t, classify("redis: nil"))
	assert.Empty(t, classify(nil))
}

func TestClassifier_ThroughClassifier(t *testing.T) {
	t.Parallel()
	c := errstatus.New(testutil.Translator(),
		errstatus.WithCustomClassifier(rediserr.Classifier(testutil.Translator())),
	)
	got := c.Classify(context.Background(), redis.Nil)
	assert.Equal(t, testutil.TranslatedKey("errStatus.404"), got,
		`"redis: nil" carries no status digits, so the custom classifier decides`)
}
