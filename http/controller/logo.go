package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-gallery-service/provider"
	"github.com/tnqbao/gau-gallery-service/utils"
)

// GetLogo resolves the fixed logo key with the short TTL so a replaced
// logo never outlives its freshness window.
func (ctrl *Controller) GetLogo(c *gin.Context) {
	ctx := c.Request.Context()

	resolved, err := ctrl.Provider.Resolver.ResolveLogoURL(ctx)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			utils.JSON404(c, "no logo uploaded")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Logo] failed to resolve logo URL")
		respondStorageError(c, err)
		return
	}

	utils.JSON200(c, gin.H{"url": resolved.URL, "expires_at": resolved.ExpiresAt})
}

// UploadLogo replaces the singleton logo in place. The fixed key is always
// overwritten so repeated uploads never accumulate orphaned blobs.
func (ctrl *Controller) UploadLogo(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSON400(c, "missing required field: file")
		return
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		utils.JSON500(c, "failed to read file: "+err.Error())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	if err := ctrl.Provider.Resolver.Put(ctx, provider.LogoObjectKey, data, contentType, true); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Logo] upload failed")
		respondStorageError(c, err)
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Logo] logo replaced (%d bytes)", len(data))
	ctrl.notifyMediaChanged(ctx, "logo", 0, "update")
	utils.JSON200(c, nil)
}
