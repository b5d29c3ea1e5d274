package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetClasses lists the catalog, optionally filtered by ?teacher= and
// ?date= (exact display string).
func (h Handlers) GetClasses(c *gin.Context) {
	classes, err := h.catalog().ListClasses(c.Request.Context(), c.Query("teacher"), c.Query("date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"classes": classes,
		"total":   len(classes),
	})
}

func (h Handlers) GetClassByID(c *gin.Context) {
	class, err := h.catalog().GetClass(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h Handlers) GetTeacherNames(c *gin.Context) {
	names, err := h.catalog().TeacherNames(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teachers": names})
}
