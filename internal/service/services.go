package service

import (
	"github.com/ymatsuda/go-api-sample/internal/config"
	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/internal/store"
)

// Services aggregates every service the application exposes.
type Services struct {
	Calc    CalcService
	User    UserService
	AppInfo AppInfoService
}

// NewServices wires all services on top of the given storages and
// application configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) (*Services, error) {
	log.Debug().Msg("creating services")

	if storages == nil {
		return nil, errNoStoragesAreCreated
	}

	return &Services{
		Calc:    NewCalcService(log),
		User:    NewUserService(storages.UserRepository, cfg.App, log),
		AppInfo: NewAppInfoService(cfg.App, log),
	}, nil
}
