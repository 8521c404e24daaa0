package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-gallery-service/config"
)

type Middlewares struct {
	CORSMiddleware      gin.HandlerFunc
	AdminAuthMiddleware gin.HandlerFunc
}

func NewMiddlewares(cfg *config.Config) *Middlewares {
	return &Middlewares{
		CORSMiddleware:      CORSMiddleware(cfg.EnvConfig),
		AdminAuthMiddleware: AdminAuthMiddleware(cfg.EnvConfig),
	}
}
