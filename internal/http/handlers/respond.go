package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coachbooking/internal/domain"
)

// respondError maps domain errors onto HTTP statuses. Anything the
// mapping does not recognize becomes a 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var (
		nf   domain.NotFoundError
		val  domain.ValidationError
		conf domain.ConflictError
		un   domain.UnauthorizedError
		up   domain.UpstreamError
	)
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.As(err, &val):
		body := gin.H{"error": val.Error()}
		if val.Field != "" {
			body["field"] = val.Field
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.As(err, &conf):
		c.JSON(http.StatusConflict, gin.H{"error": conf.Error()})
	case errors.As(err, &un):
		c.JSON(http.StatusUnauthorized, gin.H{"error": un.Error()})
	case errors.As(err, &up):
		c.JSON(http.StatusBadGateway, gin.H{"error": up.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "đã xảy ra lỗi, vui lòng thử lại sau"})
	}
}

// bindJSON decodes the request body and reports payload problems uniformly.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dữ liệu không hợp lệ"})
		return false
	}
	return true
}
