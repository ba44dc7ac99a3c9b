package service

import (
	"context"

	"github.com/ymatsuda/go-api-sample/internal/config"
	"github.com/ymatsuda/go-api-sample/internal/logger"
)

// appInfoService implements [AppInfoService].
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService constructs the application metadata service.
func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	logger.Debug().Msg("creating app info service")
	return &appInfoService{
		version: cfg.Version,
		logger:  logger,
	}
}

// GetVersion returns the configured application version.
func (s *appInfoService) GetVersion(_ context.Context) (string, error) {
	if s.version == "" {
		return "", ErrVersionIsNotSpecified
	}

	return s.version, nil
}
