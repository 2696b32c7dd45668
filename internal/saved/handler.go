package saved

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alytantawyy/Ehgezli-sub000/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type refRequest struct {
	RestaurantID string `json:"restaurant_id"`
	BranchIndex  int    `json:"branch_index"`
}

// --------------------------------------------------
// POST /saved
// --------------------------------------------------
func (h *Handler) Save(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req refRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ref := core.BranchRef{RestaurantID: req.RestaurantID, BranchIndex: req.BranchIndex}
	if err := h.service.Save(c.Request.Context(), userID, ref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "branch saved"})
}

// --------------------------------------------------
// DELETE /saved
// --------------------------------------------------
func (h *Handler) Remove(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req refRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ref := core.BranchRef{RestaurantID: req.RestaurantID, BranchIndex: req.BranchIndex}
	if err := h.service.Remove(c.Request.Context(), userID, ref); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "branch removed"})
}

// --------------------------------------------------
// GET /saved
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	refs, err := h.service.ListRefs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch saved branches"})
		return
	}

	out := make([]refRequest, 0, len(refs))
	for _, ref := range refs {
		out = append(out, refRequest{
			RestaurantID: ref.RestaurantID,
			BranchIndex:  ref.BranchIndex,
		})
	}

	c.JSON(http.StatusOK, gin.H{"saved": out})
}

func currentUser(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user context"})
		return "", false
	}
	return userID, true
}
