package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.DebugLevel, Setup("debug"))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	assert.Equal(t, logrus.InfoLevel, Setup("verbose"))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	base := &logger{entry: logrus.NewEntry(logrus.New())}

	filtered := base.WithFields(Fields{"user_agent": "curl", "query": "a=1"})
	assert.Same(t, base, filtered)

	kept := base.WithFields(Fields{"projection_id": "abc", "client_name": "web", "query": "a=1"}).(*logger)
	assert.Equal(t, "abc", kept.entry.Data["projection_id"])
	assert.Equal(t, "web", kept.entry.Data["client_name"])
	assert.NotContains(t, kept.entry.Data, "query")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	base := &logger{entry: logrus.NewEntry(logrus.New())}
	all := base.WithFields(Fields{"query": "a=1"}).(*logger)

	assert.Equal(t, "a=1", all.entry.Data["query"])
}
