package main

import "github.com/gin-gonic/gin"

// All error bodies share the {"message": "..."} shape; internal detail stays
// in the server log.
func errJSON(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"message": msg})
}
