package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
)

// parseID reads a positive integer path parameter. On a malformed or
// non-positive value it writes the 400 response itself and reports false,
// so nothing reaches the data access layer.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// abortPersistence turns an unexpected repository failure into a 500
// carrying the failure's message and nothing else.
func abortPersistence(c *gin.Context, err error) {
	logrus.WithError(err).Error("persistence failure")
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"message": msg})
}
