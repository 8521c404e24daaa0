package controller

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-gallery-service/config"
	"github.com/tnqbao/gau-gallery-service/http/controller/dto"
	"github.com/tnqbao/gau-gallery-service/infra"
	"github.com/tnqbao/gau-gallery-service/provider"
	"github.com/tnqbao/gau-gallery-service/repository"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Provider   *provider.Provider
}

func NewController(cfg *config.Config, infra *infra.Infra, repo *repository.Repository, prov *provider.Provider) *Controller {
	return &Controller{
		Config:     cfg,
		Infra:      infra,
		Repository: repo,
		Provider:   prov,
	}
}

// notifyMediaChanged invalidates the cached feed and tells the consumer to
// rebuild it. Called after every successful mutation; failures here must
// not fail the mutation that already happened.
func (ctrl *Controller) notifyMediaChanged(ctx context.Context, kind string, itemID uint, action string) {
	if err := ctrl.Provider.FeedCache.Invalidate(ctx); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Feed] failed to invalidate feed cache: %v", err)
	}
	if err := ctrl.Infra.Produce.MediaService.PublishMediaChanged(ctx, kind, itemID, action); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Feed] failed to publish media change event: %v", err)
	}
}

// itemID reads the integer identifier from the path, falling back to the
// query string and the JSON body; the admin client sends it in any of the
// three depending on the operation.
func itemID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Query("id")
	}
	if raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return 0, false
		}
		return uint(id), true
	}

	var body dto.ItemIDRequest
	if err := c.ShouldBindJSON(&body); err == nil && body.ID > 0 {
		return body.ID, true
	}
	return 0, false
}
