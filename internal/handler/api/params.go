package api

import (
	"strconv"
	"time"

	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithBadRequest(c, err, "Invalid "+name+": must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

func queryTime(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		httperr.AbortWithBadRequest(c, err, "Invalid "+name+": expected RFC 3339")
		return time.Time{}, false
	}
	return t, true
}

func queryBool(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.Query(name))
	return err == nil && v
}

// queryPage reads the limit and after parameters of a list route.
func queryPage(c *gin.Context) (*queries.Cursor, int, bool) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httperr.AbortWithBadRequest(c, err, "Invalid limit: must be an integer")
			return nil, 0, false
		}
		limit = queries.ValidateLimit(n)
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit, true
}
