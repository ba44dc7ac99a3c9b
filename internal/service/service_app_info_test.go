package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymatsuda/go-api-sample/internal/config"
	"github.com/ymatsuda/go-api-sample/internal/logger"
)

func TestAppInfoService_GetVersion(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "1.2.3"}, logger.Nop())

	version, err := svc.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}

func TestAppInfoService_GetVersion_NotSpecified(t *testing.T) {
	svc := NewAppInfoService(config.App{}, logger.Nop())

	_, err := svc.GetVersion(context.Background())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
