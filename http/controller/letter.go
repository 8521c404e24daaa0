package controller

import (
	"errors"
	"io"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-gallery-service/entity"
	"github.com/tnqbao/gau-gallery-service/http/controller/dto"
	"github.com/tnqbao/gau-gallery-service/provider"
	"github.com/tnqbao/gau-gallery-service/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func (ctrl *Controller) CreateLetter(c *gin.Context) {
	ctx := c.Request.Context()

	form, err := c.MultipartForm()
	if err != nil {
		utils.JSON400(c, "invalid multipart form: "+err.Error())
		return
	}

	mains := form.File["main"]
	if len(mains) == 0 {
		utils.JSON400(c, "missing required field: main")
		return
	}
	mainHeader := mains[0]

	var writer *string
	if supplied := c.PostForm("writer"); supplied != "" {
		if !entity.ValidWriter(supplied) {
			utils.JSON400(c, "invalid writer: expected "+entity.WriterAToB+" or "+entity.WriterBToA)
			return
		}
		writer = &supplied
	}

	mainData, err := readUpload(mainHeader)
	if err != nil {
		utils.JSON500(c, "failed to read main scan: "+err.Error())
		return
	}

	var writtenAt time.Time
	if supplied := c.PostForm("written_at"); supplied != "" {
		writtenAt, err = time.Parse(dateLayout, supplied)
		if err != nil {
			utils.JSON400(c, "invalid written_at: expected YYYY-MM-DD")
			return
		}
	} else {
		writtenAt = provider.InferCaptureDate(mainData, time.Now().UTC())
	}

	mainKey := utils.NewObjectKey(mainHeader.Filename)
	if err := ctrl.Provider.Resolver.Put(ctx, mainKey, mainData, uploadContentType(mainHeader), false); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Letter] upload of main scan %s failed", mainKey)
		respondStorageError(c, err)
		return
	}

	// pages keep the order they were attached in; that order is display order
	pageKeys := make([]string, 0, len(form.File["pages"]))
	for _, pageHeader := range form.File["pages"] {
		pageData, err := readUpload(pageHeader)
		if err != nil {
			utils.JSON500(c, "failed to read page scan: "+err.Error())
			return
		}
		pageKey := utils.NewObjectKey(pageHeader.Filename)
		if err := ctrl.Provider.Resolver.Put(ctx, pageKey, pageData, uploadContentType(pageHeader), false); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Letter] upload of page scan %s failed", pageKey)
			respondStorageError(c, err)
			return
		}
		pageKeys = append(pageKeys, utils.WithBucketPrefix(pageKey))
	}

	letter := &entity.Letter{
		FileMain:  utils.WithBucketPrefix(mainKey),
		FilePages: datatypes.JSONSlice[string](pageKeys),
		WrittenAt: &writtenAt,
		Writer:    writer,
	}
	if err := ctrl.Repository.LetterRepo.Create(letter); err != nil {
		// uploaded blobs stay orphaned rather than masking this error
		// with a compensating-delete failure
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Letter] row insert failed, %d object(s) orphaned", 1+len(pageKeys))
		utils.JSON500(c, "failed to save letter: "+err.Error())
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Letter] created letter %d with %d page(s)", letter.ID, len(pageKeys))
	ctrl.notifyMediaChanged(ctx, string(provider.CardKindLetter), letter.ID, "create")
	utils.JSON201(c, gin.H{"id": letter.ID, "file_main": letter.FileMain, "file_pages": letter.FilePages})
}

func (ctrl *Controller) UpdateLetter(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := itemID(c)
	if !ok {
		utils.JSON400(c, "missing id")
		return
	}

	var req dto.UpdateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.WrittenAt != nil {
		t, err := time.Parse(dateLayout, *req.WrittenAt)
		if err != nil {
			utils.JSON400(c, "invalid written_at: expected YYYY-MM-DD")
			return
		}
		fields["written_at"] = t
	}
	if req.Writer != nil {
		if !entity.ValidWriter(*req.Writer) {
			utils.JSON400(c, "invalid writer: expected "+entity.WriterAToB+" or "+entity.WriterBToA)
			return
		}
		fields["writer"] = *req.Writer
	}
	if len(fields) == 0 {
		utils.JSON400(c, "no fields to update")
		return
	}

	if err := ctrl.Repository.LetterRepo.UpdateFields(id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "letter not found")
			return
		}
		utils.JSON500(c, "update error: "+err.Error())
		return
	}

	ctrl.notifyMediaChanged(ctx, string(provider.CardKindLetter), id, "update")
	utils.JSON200(c, nil)
}

func (ctrl *Controller) DeleteLetter(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := itemID(c)
	if !ok {
		utils.JSON400(c, "missing id")
		return
	}

	// object keys must be collected before the row disappears
	letter, err := ctrl.Repository.LetterRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "letter not found")
			return
		}
		utils.JSON500(c, "select error: "+err.Error())
		return
	}

	keys := make([]string, 0, len(letter.FilePages)+1)
	keys = append(keys, letter.FileMain)
	keys = append(keys, letter.FilePages...)

	warn := ctrl.Provider.Resolver.RemoveAll(ctx, keys...)
	if warn != "" {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Letter] delete %d: %s", id, warn)
	}

	if err := ctrl.Repository.LetterRepo.Delete(id); err != nil {
		utils.JSON500(c, "delete row error: "+err.Error())
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Letter] deleted letter %d", id)
	ctrl.notifyMediaChanged(ctx, string(provider.CardKindLetter), id, "delete")

	if warn != "" {
		utils.JSON200(c, gin.H{"warn": warn})
		return
	}
	utils.JSON200(c, nil)
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func uploadContentType(fileHeader *multipart.FileHeader) string {
	if contentType := fileHeader.Header.Get("Content-Type"); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}
