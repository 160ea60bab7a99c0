package share

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"docshare/internal/pkg/response"
)

// Handler exposes the share link API: admin issuance/revocation plus the
// anonymous token-gated browse and download routes.
type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

type createLinkRequest struct {
	FolderPath  string `json:"folderPath"`
	Description string `json:"description"`
	ExpiresIn   int    `json:"expiresIn"` // days; 0 or absent = permanent
	Password    string `json:"password"`
}

// CreateLink handles POST /api/public-share.
func (h *Handler) CreateLink(c *gin.Context) {
	var req createLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	link, err := h.service.CreateLink(c.Request.Context(), CreateLinkInput{
		FolderPath:    req.FolderPath,
		Description:   req.Description,
		ExpiresInDays: req.ExpiresIn,
		Password:      req.Password,
		CreatedBy:     c.GetString("subject"),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	body := gin.H{
		"success":  true,
		"shareUrl": h.service.ShareURL(link.Token),
		"token":    link.Token,
		"id":       link.ID,
	}
	if link.ExpiresAt != nil {
		body["expiresAt"] = link.ExpiresAt
	}
	c.JSON(http.StatusCreated, body)
}

// ListLinks handles GET /api/public-share.
func (h *Handler) ListLinks(c *gin.Context) {
	links, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"links":   []*ShareLink{},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"links":   links,
	})
}

// RevokeLink handles DELETE /api/public-share?id=.
func (h *Handler) RevokeLink(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "id is required")
		return
	}

	if err := h.service.Revoke(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Browse handles GET /api/public-share/:token?path=. Returns a directory
// listing or a file descriptor depending on what the sub-path resolves to.
func (h *Handler) Browse(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "token is required")
		return
	}

	browse, err := h.service.Describe(c.Request.Context(), token, c.Query("path"), linkPassword(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, browse)
}

// DownloadByToken handles GET /api/public-share/:token/download?path=.
func (h *Handler) DownloadByToken(c *gin.Context) {
	h.download(c, c.Param("token"))
}

// LegacyDownload handles GET /api/share-download?token=&path=, the route
// shape older share URLs were issued with. Same semantics as the token
// download route.
func (h *Handler) LegacyDownload(c *gin.Context) {
	h.download(c, c.Query("token"))
}

func (h *Handler) download(c *gin.Context, token string) {
	if token == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "token is required")
		return
	}

	dl, err := h.service.ResolveDownload(c.Request.Context(), token, c.Query("path"), linkPassword(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	// Percent-encode the filename so non-ASCII document names survive the
	// header. ServeFile keeps a pre-set Content-Type and adds
	// Content-Length itself.
	c.Header("Content-Type", dl.MimeType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(dl.Name)))
	c.File(dl.AbsPath)
}

// Events handles GET /api/share-events, the websocket audit feed.
func (h *Handler) Events(c *gin.Context) {
	if err := h.hub.ServeWS(c.Writer, c.Request); err != nil {
		// upgrade failed; the upgrader already wrote the response
		c.Abort()
	}
}

func linkPassword(c *gin.Context) string {
	if p := c.Query("password"); p != "" {
		return p
	}
	return c.GetHeader("X-Share-Password")
}

// respondError maps service sentinels to the HTTP taxonomy. Anything
// unrecognized is a 500 with a generic body; detail goes to the request
// error log only.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyFolderPath),
		errors.Is(err, ErrNotDirectory),
		errors.Is(err, ErrIsDirectory):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrPasswordRequired):
		response.Error(c, http.StatusUnauthorized, "PASSWORD_REQUIRED", err.Error())
	case errors.Is(err, ErrLinkNotFound),
		errors.Is(err, ErrFolderNotFound),
		errors.Is(err, ErrPathNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrAccessDenied):
		response.Error(c, http.StatusForbidden, "ACCESS_DENIED", "access denied")
	default:
		c.Error(err) //nolint:errcheck
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
