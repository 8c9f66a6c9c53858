package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"basket/pkg/errors"
)

// A malformed connection string fails at driver parse time, before any
// network access, so these run without a database.
const malformedDSN = "://not-a-connection-string"

func TestAnalyzer_Ping_MalformedDSN(t *testing.T) {
	analyzer := New(malformedDSN)

	err := analyzer.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConnectionFailed))
}

func TestAnalyzer_Queries_MalformedDSN(t *testing.T) {
	analyzer := New(malformedDSN)
	ctx := context.Background()

	_, err := analyzer.TopItems(ctx, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConnectionFailed))

	_, err = analyzer.StoreDistribution(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConnectionFailed))

	_, err = analyzer.UserStatistics(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConnectionFailed))
}
