package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// parseID reads the :id route parameter. A non-numeric id aborts with 400.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondResourceError maps store/service errors from CRUD resources onto
// HTTP statuses.
func respondResourceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, domain.ErrDuplicate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "A record with this unique value already exists"})
	case errors.Is(err, domain.ErrCategoryTaken):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Content for this category already exists. Only one record per category is allowed."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed"})
	}
}
