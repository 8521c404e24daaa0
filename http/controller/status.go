package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-gallery-service/utils"
)

// StorageStatus reports bucket data usage for the admin dashboard.
func (ctrl *Controller) StorageStatus(c *gin.Context) {
	ctx := c.Request.Context()

	usage, err := ctrl.Infra.Minio.DataUsage(ctx)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Status] failed to get storage usage")
		utils.JSON500(c, "failed to get storage usage: "+err.Error())
		return
	}

	utils.JSON200(c, gin.H{
		"objects_total": usage.ObjectsTotalCount,
		"size_total":    usage.ObjectsTotalSize,
		"buckets_count": usage.BucketsCount,
		"last_update":   usage.LastUpdate,
	})
}
