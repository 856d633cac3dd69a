package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wanjikuh/shop_admin/logger"
)

func testLoggerFor(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("dev")
	require.NoError(t, err)
	return log
}
