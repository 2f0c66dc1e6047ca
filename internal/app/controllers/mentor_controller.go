package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorhub/internal/app/models/dto"
	"github.com/yigit/mentorhub/internal/app/services"
	"github.com/yigit/mentorhub/internal/middleware"
)

// MentorController handles mentor-side endpoints
type MentorController struct {
	relationshipService services.RelationshipService
}

// NewMentorController creates a new MentorController
func NewMentorController(relationshipService services.RelationshipService) *MentorController {
	return &MentorController{
		relationshipService: relationshipService,
	}
}

// CreateMentor handles mentor creation
// @Summary Create a new mentor
// @Tags mentors
// @Accept json
// @Produce json
// @Param request body dto.CreateMentorRequest true "Mentor information"
// @Success 200 {object} dto.CreateMentorResponse "Mentor created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /create-mentor [post]
func (c *MentorController) CreateMentor(ctx *gin.Context) {
	var req dto.CreateMentorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	mentor, err := c.relationshipService.CreateMentor(ctx.Request.Context(), req.Name, req.Expertise)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateMentorResponse{
		Message: "Mentor created successfully",
		Mentor:  mentor,
	})
}

// AssignStudents assigns unassigned students to a mentor
// @Summary Assign students to a mentor
// @Description Only students without a current mentor are assigned; the rest are skipped
// @Tags mentors
// @Accept json
// @Produce json
// @Param request body dto.AssignStudentsRequest true "Mentor and student ids"
// @Success 200 {object} dto.AssignStudentsResponse "Students assigned successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or no eligible students"
// @Failure 404 {object} dto.ErrorResponse "Mentor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assign-students-to-mentor [post]
func (c *MentorController) AssignStudents(ctx *gin.Context) {
	var req dto.AssignStudentsRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.relationshipService.AssignStudentsToMentor(ctx.Request.Context(), req.MentorID, req.StudentIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AssignStudentsResponse{
		Message:      "Students assigned successfully",
		MentorID:     result.MentorID,
		StudentIDs:   result.StudentIDs,
		MatchedCount: result.MatchedCount,
	})
}

// ListStudents lists the students currently assigned to a mentor
// @Summary List a mentor's students
// @Tags mentors
// @Produce json
// @Param mentorId path string true "Mentor ID"
// @Success 200 {object} dto.MentorStudentsResponse "Students of the mentor"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{mentorId} [get]
func (c *MentorController) ListStudents(ctx *gin.Context) {
	result, err := c.relationshipService.ListStudentsForMentor(ctx.Request.Context(), ctx.Param("mentorId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MentorStudentsResponse{
		MentorID: result.MentorID,
		Students: result.Students,
	})
}
