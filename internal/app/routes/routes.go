package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/mentorhub/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	mentorController *controllers.MentorController,
	studentController *controllers.StudentController,
	healthController *controllers.HealthController,
) {
	// Mentor routes
	router.POST("/create-mentor", mentorController.CreateMentor)
	router.POST("/assign-students-to-mentor", mentorController.AssignStudents)
	router.GET("/students/:mentorId", mentorController.ListStudents)

	// Student routes
	router.POST("/create-student", studentController.CreateStudent)
	router.POST("/change-mentor", studentController.ChangeMentor)
	router.GET("/previous-mentor/:studentId", studentController.GetPreviousMentor)

	// Probes
	router.GET("/health", healthController.Health)
	router.GET("/ping", healthController.Ping)
}
