package share

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the share API. guard protects the administration
// routes only; token-holder routes stay public: the share token
// in the URL is their credential.
func RegisterRoutes(api *gin.RouterGroup, h *Handler, guard gin.HandlerFunc) {
	admin := api.Group("/public-share")
	if guard != nil {
		admin.Use(guard)
	}
	{
		admin.POST("", h.CreateLink)
		admin.GET("", h.ListLinks)
		admin.DELETE("", h.RevokeLink)
	}

	api.GET("/public-share/:token", h.Browse)
	api.GET("/public-share/:token/download", h.DownloadByToken)
	api.GET("/share-download", h.LegacyDownload)
	api.GET("/share-events", h.Events)
}
