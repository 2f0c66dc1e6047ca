package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorhub/internal/app/models/dto"
	"github.com/yigit/mentorhub/internal/app/services"
	"github.com/yigit/mentorhub/internal/middleware"
)

// StudentController handles student-side endpoints
type StudentController struct {
	relationshipService services.RelationshipService
}

// NewStudentController creates a new StudentController
func NewStudentController(relationshipService services.RelationshipService) *StudentController {
	return &StudentController{
		relationshipService: relationshipService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 200 {object} dto.StudentResponse "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /create-student [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.relationshipService.CreateStudent(ctx.Request.Context(), req.Name, req.Course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentResponse{
		Message: "Student created successfully",
		Student: student,
	})
}

// ChangeMentor moves a student to a new mentor, remembering the previous one
// @Summary Change a student's mentor
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.ChangeMentorRequest true "Student and new mentor ids"
// @Success 200 {object} dto.StudentResponse "Mentor changed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student or mentor not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent mentor change"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /change-mentor [post]
func (c *StudentController) ChangeMentor(ctx *gin.Context) {
	var req dto.ChangeMentorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.relationshipService.ChangeMentor(ctx.Request.Context(), req.StudentID, req.NewMentorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentResponse{
		Message: "Mentor changed successfully",
		Student: student,
	})
}

// GetPreviousMentor returns the student's previous mentor
// @Summary Get a student's previous mentor
// @Tags students
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.PreviousMentorResponse "Previous mentor"
// @Success 200 {object} dto.NoPreviousMentorResponse "No previous mentor assigned"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /previous-mentor/{studentId} [get]
func (c *StudentController) GetPreviousMentor(ctx *gin.Context) {
	result, err := c.relationshipService.GetPreviousMentor(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if result.PreviousMentor == nil {
		ctx.JSON(http.StatusOK, dto.NoPreviousMentorResponse{
			Message:   result.Message,
			StudentID: result.StudentID,
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.PreviousMentorResponse{
		StudentID:      result.StudentID,
		PreviousMentor: result.PreviousMentor,
	})
}
