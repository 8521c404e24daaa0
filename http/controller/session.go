package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-gallery-service/http/controller/dto"
	"github.com/tnqbao/gau-gallery-service/utils"
)

// CreateSession exchanges the admin password for a short-lived session
// token. Authorization is never ambient client state: every mutation call
// carries this token (or the shared secret) explicitly.
func (ctrl *Controller) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "missing required field: password")
		return
	}

	if !utils.SecureCompare(req.Password, ctrl.Config.EnvConfig.Admin.Password) {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Session] rejected admin login attempt")
		utils.JSON401(c, "unauthorized")
		return
	}

	token, err := utils.GenerateSessionToken(ctrl.Config.EnvConfig)
	if err != nil {
		utils.JSON500(c, "failed to issue session token: "+err.Error())
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Session] admin session issued")
	utils.JSON200(c, gin.H{"token": token, "expires_in": ctrl.Config.EnvConfig.JWT.Expire})
}
