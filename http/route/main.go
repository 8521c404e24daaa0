package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-gallery-service/http/controller"
	middlewares "github.com/tnqbao/gau-gallery-service/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles := middlewares.NewMiddlewares(ctrl.Config)
	r.Use(middles.CORSMiddleware)

	apiRoutes := r.Group("/api/v1/gallery")
	{
		// public feed surface
		apiRoutes.GET("/feed", ctrl.GetFeed)
		apiRoutes.GET("/letters/:id/pages", ctrl.GetLetterPages)
		apiRoutes.GET("/logo", ctrl.GetLogo)

		adminRoutes := apiRoutes.Group("/admin")
		{
			adminRoutes.POST("/session", ctrl.CreateSession)

			authedRoutes := adminRoutes.Group("")
			authedRoutes.Use(middles.AdminAuthMiddleware)
			{
				authedRoutes.POST("/images", ctrl.CreateImage)
				authedRoutes.PATCH("/images/:id", ctrl.UpdateImage)
				authedRoutes.DELETE("/images", ctrl.DeleteImage)
				authedRoutes.DELETE("/images/:id", ctrl.DeleteImage)

				authedRoutes.POST("/letters", ctrl.CreateLetter)
				authedRoutes.PATCH("/letters/:id", ctrl.UpdateLetter)
				authedRoutes.DELETE("/letters", ctrl.DeleteLetter)
				authedRoutes.DELETE("/letters/:id", ctrl.DeleteLetter)

				authedRoutes.POST("/logo", ctrl.UploadLogo)
				authedRoutes.GET("/status", ctrl.StorageStatus)
			}
		}
	}
	return r
}
