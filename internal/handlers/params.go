package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseUintQuery(c *gin.Context, key string) (uint, error) {
	v, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
