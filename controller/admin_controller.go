package controller

import (
	"context"
	"net/http"

	"marketfeed/config"
	"marketfeed/model"
	"marketfeed/service"

	"github.com/danielgtaylor/huma/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	sysCfg     *config.SystemConfigs
	cfgManager *config.ConfigManager
	marketSvc  service.MarketService
	indicesSvc service.IndicesService
}

func NewAdminController(sysCfg *config.SystemConfigs, cm *config.ConfigManager, ms service.MarketService, is service.IndicesService) *AdminController {
	return &AdminController{
		sysCfg:     sysCfg,
		cfgManager: cm,
		marketSvc:  ms,
		indicesSvc: is,
	}
}

func (ctrl *AdminController) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-active-config",
		Method:      http.MethodGet,
		Path:        "/api/admin/config",
		Summary:     "Get Active Configuration",
		Tags:        []string{"Admin"},
	}, ctrl.getActiveConfig)

	huma.Register(api, huma.Operation{
		OperationID: "update-config",
		Method:      http.MethodPatch,
		Path:        "/api/admin/config",
		Summary:     "Update Runtime Configuration",
		Tags:        []string{"Admin"},
	}, ctrl.updateRuntimeConfig)

	huma.Register(api, huma.Operation{
		OperationID: "flush-caches",
		Method:      http.MethodPost,
		Path:        "/api/admin/cache/flush",
		Summary:     "Flush Data Caches",
		Tags:        []string{"Admin"},
	}, ctrl.flushCaches)
}

func (ctrl *AdminController) getActiveConfig(ctx context.Context, input *struct{}) (*model.ConfigResponse, error) {
	envCfg := ctrl.sysCfg.Config
	return &model.ConfigResponse{
		Body: model.ActiveConfig{
			Environment:      envCfg.Environment,
			SecondaryEnabled: envCfg.AlphaVantageKey != "",
			Fetch:            envCfg.Fetch,
			Runtime:          *ctrl.cfgManager.GetConfig(),
		},
	}, nil
}

func (ctrl *AdminController) updateRuntimeConfig(ctx context.Context, input *model.Request) (*model.DefaultResponse, error) {
	var req model.RuntimeConfig

	if err := mapstructure.Decode(input.Body, &req); err != nil {
		return nil, huma.Error400BadRequest("Invalid Request")
	}

	ctrl.cfgManager.UpdateConfig(&req)

	if req.DebugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Info().Bool("debug", req.DebugMode).Bool("rateLimiter", req.RateLimiter).Msg("Runtime config updated")

	return NewResponse(nil, "Runtime Config Updated Successfully"), nil
}

func (ctrl *AdminController) flushCaches(ctx context.Context, input *struct{}) (*model.DefaultResponse, error) {
	ctrl.marketSvc.FlushCache()
	ctrl.indicesSvc.FlushCache()
	log.Info().Msg("Data caches flushed")
	return NewResponse(nil, "Caches Flushed Successfully"), nil
}
