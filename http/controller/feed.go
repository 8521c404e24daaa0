package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-gallery-service/utils"
	"github.com/tnqbao/gau-gallery-service/viewer"
	"gorm.io/gorm"
)

// GetFeed serves the unified media feed. The cached copy is one JSON blob
// swapped atomically by the consumer, so readers never observe a partially
// rebuilt feed; a cache miss builds fresh.
func (ctrl *Controller) GetFeed(c *gin.Context) {
	ctx := c.Request.Context()

	if cards, ok := ctrl.Provider.FeedCache.Get(ctx); ok {
		utils.JSON200(c, gin.H{"items": cards})
		return
	}

	cards := ctrl.Provider.Aggregator.BuildFeed(ctx)
	if err := ctrl.Provider.FeedCache.Store(ctx, cards); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Feed] failed to store feed cache: %v", err)
	}

	utils.JSON200(c, gin.H{"items": cards})
}

// GetLetterPages lazily resolves the full page sequence of one letter and
// returns the opened viewer state, so page URLs are only signed when that
// letter is actually opened.
func (ctrl *Controller) GetLetterPages(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := itemID(c)
	if !ok {
		utils.JSON400(c, "missing id")
		return
	}

	letter, err := ctrl.Repository.LetterRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "letter not found")
			return
		}
		utils.JSON500(c, "select error: "+err.Error())
		return
	}

	urls, err := ctrl.Provider.Aggregator.LetterPages(ctx, letter)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Feed] failed to resolve pages of letter %d", id)
		respondStorageError(c, err)
		return
	}

	date := ""
	if letter.WrittenAt != nil {
		date = letter.WrittenAt.Format("2006.01.02")
	} else if !letter.CreatedAt.IsZero() {
		date = letter.CreatedAt.Format("2006.01.02")
	}

	state := viewer.OpenLetter(urls, date)
	utils.JSON200(c, gin.H{"viewer": state, "writer": letter.Writer})
}
