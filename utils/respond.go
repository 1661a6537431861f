// utils/respond.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the uniform error JSON shape.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RespondWithFieldErrors writes a 422 carrying every failed field so the
// form can highlight them all at once.
func RespondWithFieldErrors(c *gin.Context, errs []FieldError) {
	c.JSON(422, gin.H{"errors": errs})
}
