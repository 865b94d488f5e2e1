package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/TEJ42000/ALLMS-sub002/internal/models"
	"github.com/TEJ42000/ALLMS-sub002/internal/report"
	"github.com/TEJ42000/ALLMS-sub002/internal/store"
	"github.com/gin-gonic/gin"
)

const (
	verifySampleLimit   = 10
	verifySampleDisplay = 5
)

// MaterialsHandler serves course and material listings plus the JSON
// verification summary.
type MaterialsHandler struct {
	store store.Store
}

func NewMaterialsHandler(s store.Store) *MaterialsHandler {
	return &MaterialsHandler{store: s}
}

// ListCourses returns all courses
func (h *MaterialsHandler) ListCourses(c *gin.Context) {
	ctx := context.Background()

	courses, err := h.store.Courses(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// ListMaterials returns material documents for one course
func (h *MaterialsHandler) ListMaterials(c *gin.Context) {
	courseID := c.Param("id")
	ctx := context.Background()

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = parsed
	}

	materials, err := h.store.Materials(ctx, courseID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"course_id": courseID,
		"materials": materials,
	})
}

// VerifyMaterials returns the verification summary for every course: the
// unbounded total plus up to 5 sampled documents, same reads the console
// reporter issues.
func (h *MaterialsHandler) VerifyMaterials(c *gin.Context) {
	ctx := context.Background()

	courses, err := h.store.Courses(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	results := []models.CourseVerification{}
	for _, course := range courses {
		sample, err := h.store.Materials(ctx, course.ID, verifySampleLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
			return
		}

		all, err := h.store.Materials(ctx, course.ID, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
			return
		}

		verification := models.CourseVerification{
			CourseID:       course.ID,
			TotalMaterials: len(all),
			Sample:         []models.MaterialSample{},
		}
		for i, doc := range sample {
			if i == verifySampleDisplay {
				break
			}
			verification.Sample = append(verification.Sample, models.MaterialSample{
				Filename:   report.Field(doc, "filename"),
				WeekNumber: report.Field(doc, "weekNumber"),
				Tier:       report.Field(doc, "tier"),
			})
		}

		results = append(results, verification)
	}

	c.JSON(http.StatusOK, gin.H{"courses": results})
}
