package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-gallery-service/entity"
	"github.com/tnqbao/gau-gallery-service/http/controller/dto"
	"github.com/tnqbao/gau-gallery-service/provider"
	"github.com/tnqbao/gau-gallery-service/utils"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

func (ctrl *Controller) CreateImage(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Image] create request without file: %v", err)
		utils.JSON400(c, "missing required field: file")
		return
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		utils.JSON500(c, "failed to read file: "+err.Error())
		return
	}

	capturedAt, ok := ctrl.captureDate(c, data)
	if !ok {
		return
	}

	key := utils.NewObjectKey(fileHeader.Filename)
	if err := ctrl.Provider.Resolver.Put(ctx, key, data, uploadContentType(fileHeader), false); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] upload of %s failed", key)
		respondStorageError(c, err)
		return
	}

	image := &entity.Image{
		FilePath:   utils.WithBucketPrefix(key),
		CapturedAt: &capturedAt,
	}
	if err := ctrl.Repository.ImageRepo.Create(image); err != nil {
		// the uploaded blob stays orphaned; a compensating delete would
		// only risk masking this error with a second failure
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Image] row insert failed, object %s orphaned", key)
		utils.JSON500(c, "failed to save image: "+err.Error())
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Image] created image %d (%s)", image.ID, key)
	ctrl.notifyMediaChanged(ctx, string(provider.CardKindPhoto), image.ID, "create")
	utils.JSON201(c, gin.H{"id": image.ID, "file_path": image.FilePath})
}

// captureDate resolves the image's calendar day: an explicitly supplied
// date wins, otherwise it is inferred from EXIF metadata with the
// browser-supplied last-modified time (or receipt time) as fallback.
func (ctrl *Controller) captureDate(c *gin.Context, data []byte) (time.Time, bool) {
	if supplied := c.PostForm("captured_at"); supplied != "" {
		t, err := time.Parse(dateLayout, supplied)
		if err != nil {
			utils.JSON400(c, "invalid captured_at: expected YYYY-MM-DD")
			return time.Time{}, false
		}
		return t, true
	}

	fallback := time.Now().UTC()
	if raw := c.PostForm("last_modified"); raw != "" {
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil && ms > 0 {
			fallback = time.UnixMilli(ms).UTC()
		}
	}
	return provider.InferCaptureDate(data, fallback), true
}

func (ctrl *Controller) UpdateImage(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := itemID(c)
	if !ok {
		utils.JSON400(c, "missing id")
		return
	}

	var req dto.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.CapturedAt != nil {
		t, err := time.Parse(dateLayout, *req.CapturedAt)
		if err != nil {
			utils.JSON400(c, "invalid captured_at: expected YYYY-MM-DD")
			return
		}
		fields["captured_at"] = t
	}
	if len(fields) == 0 {
		utils.JSON400(c, "no fields to update")
		return
	}

	if err := ctrl.Repository.ImageRepo.UpdateFields(id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "image not found")
			return
		}
		utils.JSON500(c, "update error: "+err.Error())
		return
	}

	ctrl.notifyMediaChanged(ctx, string(provider.CardKindPhoto), id, "update")
	utils.JSON200(c, nil)
}

func (ctrl *Controller) DeleteImage(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := itemID(c)
	if !ok {
		utils.JSON400(c, "missing id")
		return
	}

	// the object key must be known before the row disappears
	image, err := ctrl.Repository.ImageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "image not found")
			return
		}
		utils.JSON500(c, "select error: "+err.Error())
		return
	}

	warn := ctrl.Provider.Resolver.RemoveAll(ctx, image.FilePath)
	if warn != "" {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Image] delete %d: %s", id, warn)
	}

	if err := ctrl.Repository.ImageRepo.Delete(id); err != nil {
		utils.JSON500(c, "delete row error: "+err.Error())
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Image] deleted image %d", id)
	ctrl.notifyMediaChanged(ctx, string(provider.CardKindPhoto), id, "delete")

	if warn != "" {
		utils.JSON200(c, gin.H{"warn": warn})
		return
	}
	utils.JSON200(c, nil)
}

func respondStorageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, provider.ErrConflict):
		utils.JSON409(c, "object already exists: "+err.Error())
	case errors.Is(err, provider.ErrNotFound):
		utils.JSON404(c, err.Error())
	case errors.Is(err, provider.ErrAccessDenied):
		utils.JSON500(c, "storage access denied: "+err.Error())
	case errors.Is(err, provider.ErrValidation):
		utils.JSON400(c, err.Error())
	default:
		utils.JSON500(c, "storage error: "+err.Error())
	}
}
