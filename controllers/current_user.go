package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentUserID normalizes the user_id claim from the auth middleware. JWT
// numeric claims decode as float64, so accept the common numeric shapes.
func currentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("user_id missing from context")
	}
	switch id := v.(type) {
	case uint:
		return id, nil
	case int:
		return uint(id), nil
	case int64:
		return uint(id), nil
	case float64:
		return uint(id), nil
	case string:
		if n, err := strconv.ParseUint(id, 10, 64); err == nil {
			return uint(n), nil
		}
	}
	return 0, errors.New("user_id not valid")
}
