package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"scuttlebutt/internal/apperr"

	"github.com/gin-gonic/gin"
)

// fail translates an error into the response envelope. Typed rejections keep
// their status and message; everything else is logged server-side and reaches
// the client only as a generic 500.
func fail(c *gin.Context, err error) {
	var apiErr *apperr.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"msg": apiErr.Msg})
		return
	}
	log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"msg": "Internal Server Error"})
}

// pathID reads a numeric path parameter. Malformed identifiers are rejected
// here so the store only ever sees well-formed ints.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		fail(c, apperr.InvalidID())
		return 0, false
	}
	return id, true
}
