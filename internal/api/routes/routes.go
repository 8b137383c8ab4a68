// Package routes handles the setup and configuration of API routes
package routes

import (
	"database/sql"

	_ "hrhub/docs" // Import swagger docs
	"hrhub/internal/api/handlers"
	"hrhub/internal/api/middleware"
	"hrhub/internal/auth"
	"hrhub/internal/config"
	"hrhub/internal/models"
	"hrhub/internal/repository/postgres"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.Default()

	healthHandler := handlers.NewHealthHandler(db)

	// Routes without rate limiting
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Apply rate limiting to all other routes
	r.Use(middleware.NewRateLimiter(cfg).Middleware())

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)
	auditRepo := postgres.NewAuditLogRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)
	branchRepo := postgres.NewBranchRepository(db)
	positionRepo := postgres.NewPositionRepository(db)
	scheduleRepo := postgres.NewTimeScheduleRepository(db)
	leaveRepo := postgres.NewLeaveRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)

	// Initialize services
	authService := auth.NewService(cfg, refreshTokenRepo)
	guard := auth.NewLockoutGuard(cfg, userRepo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authService, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, authService, guard, auditRepo, cfg)
	userHandler := handlers.NewUserHandler(userRepo, guard, auditRepo)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo)
	branchHandler := handlers.NewBranchHandler(branchRepo)
	positionHandler := handlers.NewPositionHandler(positionRepo)
	scheduleHandler := handlers.NewTimeScheduleHandler(scheduleRepo, employeeRepo)
	leaveHandler := handlers.NewLeaveHandler(leaveRepo, employeeRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, employeeRepo)
	dashboardHandler := handlers.NewDashboardHandler(employeeRepo, branchRepo, leaveRepo, attendanceRepo)
	auditHandler := handlers.NewAuditHandler(auditRepo)

	staff := []string{models.RoleAdmin, models.RoleManager}

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Health check (no authentication required)
		v1.GET("/health", healthHandler.Health)

		// Auth routes
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authMiddleware.AuthRequired(), authHandler.Logout)
			authGroup.GET("/me", authMiddleware.AuthRequired(), authHandler.Me)
			authGroup.PUT("/password", authMiddleware.AuthRequired(), authHandler.ChangePassword)
		}

		// The RFID terminal punches without a user session
		v1.POST("/attendance/clock", attendanceHandler.Clock)

		// User administration
		users := v1.Group("/users")
		users.Use(authMiddleware.AuthRequired())
		{
			users.GET("/:id", userHandler.GetUser)

			adminUsers := users.Group("")
			adminUsers.Use(authMiddleware.AdminRequired())
			{
				adminUsers.GET("", userHandler.ListUsers)
				adminUsers.PUT("/:id", userHandler.UpdateUser)
				adminUsers.DELETE("/:id", userHandler.DeleteUser)
				adminUsers.POST("/:id/unlock", userHandler.UnlockUser)
			}
		}

		// Employee routes
		employees := v1.Group("/employees")
		employees.Use(authMiddleware.AuthRequired())
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.GET("/:id", employeeHandler.GetEmployee)

			staffEmployees := employees.Group("")
			staffEmployees.Use(authMiddleware.RoleRequired(staff...))
			{
				staffEmployees.POST("", employeeHandler.CreateEmployee)
				staffEmployees.PUT("/:id", employeeHandler.UpdateEmployee)
				staffEmployees.DELETE("/:id", employeeHandler.DeleteEmployee)
			}
		}

		// Branch routes
		branches := v1.Group("/branches")
		branches.Use(authMiddleware.AuthRequired())
		{
			branches.GET("", branchHandler.ListBranches)
			branches.GET("/:id", branchHandler.GetBranch)

			adminBranches := branches.Group("")
			adminBranches.Use(authMiddleware.AdminRequired())
			{
				adminBranches.POST("", branchHandler.CreateBranch)
				adminBranches.PUT("/:id", branchHandler.UpdateBranch)
				adminBranches.DELETE("/:id", branchHandler.DeleteBranch)
			}
		}

		// Position routes
		positions := v1.Group("/positions")
		positions.Use(authMiddleware.AuthRequired())
		{
			positions.GET("", positionHandler.ListPositions)
			positions.GET("/:id", positionHandler.GetPosition)

			adminPositions := positions.Group("")
			adminPositions.Use(authMiddleware.AdminRequired())
			{
				adminPositions.POST("", positionHandler.CreatePosition)
				adminPositions.PUT("/:id", positionHandler.UpdatePosition)
				adminPositions.DELETE("/:id", positionHandler.DeletePosition)
			}
		}

		// Schedule routes
		schedules := v1.Group("/schedules")
		schedules.Use(authMiddleware.AuthRequired())
		{
			schedules.GET("", scheduleHandler.ListSchedules)
			schedules.GET("/:id", scheduleHandler.GetSchedule)

			staffSchedules := schedules.Group("")
			staffSchedules.Use(authMiddleware.RoleRequired(staff...))
			{
				staffSchedules.POST("", scheduleHandler.CreateSchedule)
				staffSchedules.PUT("/:id", scheduleHandler.UpdateSchedule)
				staffSchedules.DELETE("/:id", scheduleHandler.DeleteSchedule)
			}
		}

		// Leave routes
		leaves := v1.Group("/leaves")
		leaves.Use(authMiddleware.AuthRequired())
		{
			leaves.GET("", leaveHandler.ListLeaves)
			leaves.GET("/:id", leaveHandler.GetLeave)
			leaves.POST("", leaveHandler.CreateLeave)

			staffLeaves := leaves.Group("")
			staffLeaves.Use(authMiddleware.RoleRequired(staff...))
			{
				staffLeaves.POST("/:id/review", leaveHandler.ReviewLeave)
				staffLeaves.DELETE("/:id", leaveHandler.DeleteLeave)
			}
		}

		// Attendance listing
		attendance := v1.Group("/attendance")
		attendance.Use(authMiddleware.AuthRequired())
		{
			attendance.GET("", attendanceHandler.ListAttendance)
		}

		// Dashboard
		dashboard := v1.Group("/dashboard")
		dashboard.Use(authMiddleware.AuthRequired(), authMiddleware.RoleRequired(staff...))
		{
			dashboard.GET("/stats", dashboardHandler.Stats)
		}

		// Audit log (admin only)
		audit := v1.Group("/audit")
		audit.Use(authMiddleware.AuthRequired(), authMiddleware.AdminRequired())
		{
			audit.GET("", auditHandler.ListAuditLogs)
		}
	}

	return r
}
