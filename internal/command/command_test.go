package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/gitlab-org/labkit/correlation"

	"gitlab.com/gitlab-org/correlation-vector/internal/config"
)

func TestLogDataRoundTrip(t *testing.T) {
	ctx := context.Background()

	require.Equal(t, LogData{}, LogDataFromContext(ctx))

	logData := LogData{Operation: "extend", Vectors: 3}
	ctx = ContextWithLogData(ctx, logData)

	require.Equal(t, logData, LogDataFromContext(ctx))
}

func TestSetup(t *testing.T) {
	ctx, finished := Setup("correlation-vector", &config.Config{})
	defer finished()

	require.NotNil(t, ctx)
	require.NotEmpty(t, correlation.ExtractFromContext(ctx))
	require.Equal(t, "correlation-vector", correlation.ExtractClientNameFromContext(ctx))
}
