package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/VaibhaviS123/SafeStay/internal/httpresp"
)

func Health(c *gin.Context) {
	httpresp.OK(c, gin.H{"status": "ok"})
}
