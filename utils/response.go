package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Mutation endpoints answer with the {ok, error?, warn?} envelope.

func JSON200(c *gin.Context, data gin.H) {
	payload := gin.H{"ok": true}
	for k, v := range data {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

func JSON201(c *gin.Context, data gin.H) {
	payload := gin.H{"ok": true}
	for k, v := range data {
		payload[k] = v
	}
	c.JSON(http.StatusCreated, payload)
}

func JSON400(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": message})
}

func JSON401(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": message})
}

func JSON404(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": message})
}

func JSON409(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": message})
}

func JSON500(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": message})
}
