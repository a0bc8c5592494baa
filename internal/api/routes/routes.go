package routes

import (
	"fmt"
	"time"

	"bustrip-backend/internal/api/handlers"
	"bustrip-backend/internal/api/middleware"
	"bustrip-backend/internal/auth"
	"bustrip-backend/internal/config"
	"bustrip-backend/internal/repository"
	"bustrip-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Server bundles the router with the background work it owns
type Server struct {
	Router        *gin.Engine
	notifications *service.NotificationService
}

// Drain waits for in-flight asynchronous notifications
func (s *Server) Drain() {
	s.notifications.Wait()
}

// SetupRoutes wires repositories, services and handlers and configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*Server, error) {
	// Permission policy for new organizations
	var policy service.Policy
	if cfg.PermissionPolicyFile != "" {
		loaded, err := service.LoadPolicyFile(cfg.PermissionPolicyFile)
		if err != nil {
			return nil, err
		}
		policy = loaded
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	validator := service.NewValidator()

	// Repositories and transactions
	repos := repository.NewRepositories(db)
	tx := repository.NewTxManager(db)

	// Services
	permissionService := service.NewPermissionService(repos.Permissions, repos.Memberships, policy, validator)
	notificationService := service.NewNotificationService(repos.Users, repos.Notifications, nil, cfg.NotificationsAsync)
	tripService := service.NewTripService(repos, tx, permissionService, notificationService, validator)
	membershipService := service.NewMembershipService(repos, tx, permissionService, notificationService, validator, cfg)
	organizationService := service.NewOrganizationService(repos, tx, permissionService, validator)
	groupService := service.NewGroupService(repos, permissionService, validator)
	userService := service.NewUserService(repos.Users, tx, membershipService, validator)
	fleetService := service.NewFleetService(repos.Equipment, repos.Drivers, repos.Users, validator)

	// Auth
	tokens := auth.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryMinutes)*time.Minute)
	authMiddleware := auth.NewAuthMiddleware(tokens)

	// Handlers
	healthHandler := handlers.NewHealthHandler(sqlDB)
	tripHandler := handlers.NewTripHandler(tripService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	groupHandler := handlers.NewGroupHandler(groupService)
	permissionHandler := handlers.NewPermissionHandler(permissionService)
	userHandler := handlers.NewUserHandler(userService, tokens)
	fleetHandler := handlers.NewFleetHandler(fleetService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	schedulerHandler := handlers.NewSchedulerHandler(tripService)

	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Endpoints for the external trip-completion scheduler
	internal := router.Group("/internal", auth.RequireSchedulerSecret(cfg.SchedulerSecret))
	{
		internal.POST("/trips/complete-elapsed", schedulerHandler.CompleteElapsedTrips)
	}

	// Public registration
	router.POST("/api/v1/users/register", userHandler.Register)

	// API v1 routes - all other endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		trips := v1.Group("/trips")
		{
			trips.POST("", tripHandler.CreateTrip)
			trips.GET("", tripHandler.ListTrips)
			trips.GET("/:id", tripHandler.GetTrip)
			trips.PUT("/:id", tripHandler.UpdateTrip)
			trips.POST("/:id/submit", tripHandler.SubmitForQuote)
			trips.POST("/:id/decision", tripHandler.Decide)
			trips.POST("/:id/activate", tripHandler.Activate)
			trips.POST("/:id/cancel", tripHandler.Cancel)
			trips.POST("/:id/copy", tripHandler.Copy)
			trips.POST("/:id/assignments", tripHandler.Assign)
			trips.DELETE("/:id/assignments/:assignmentId", tripHandler.Unassign)
			trips.GET("/:id/changelog", tripHandler.GetChangeLog)
		}

		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
			organizations.POST("/:id/deactivate", organizationHandler.DeactivateOrganization)
			organizations.POST("/:id/reactivate", organizationHandler.ReactivateOrganization)
			organizations.GET("/:id/members", membershipHandler.ListMembers)
			organizations.POST("/:id/invitations", membershipHandler.Invite)
			organizations.POST("/:id/leave", membershipHandler.Leave)
			organizations.GET("/:id/groups", groupHandler.ListGroups)
			organizations.POST("/:id/groups", groupHandler.CreateGroup)
			organizations.GET("/:id/permissions", permissionHandler.GetPermissions)
			organizations.PUT("/:id/permissions", permissionHandler.SetPermissions)
		}

		invitations := v1.Group("/invitations")
		{
			invitations.POST("/accept", membershipHandler.AcceptInvitation)
			invitations.DELETE("/:id", membershipHandler.RevokeInvitation)
		}

		memberships := v1.Group("/memberships")
		{
			memberships.PUT("/:id/role", membershipHandler.ChangeRole)
			memberships.DELETE("/:id", membershipHandler.RemoveMember)
		}

		groups := v1.Group("/groups")
		{
			groups.GET("/:id", groupHandler.GetGroup)
			groups.PUT("/:id", groupHandler.UpdateGroup)
			groups.PUT("/:id/active", groupHandler.SetGroupActive)
			groups.DELETE("/:id", groupHandler.DeleteGroup)
		}

		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("/me", userHandler.GetCurrentUser)
			users.GET("/:id", userHandler.GetUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		equipment := v1.Group("/equipment")
		{
			equipment.GET("", fleetHandler.ListEquipment)
			equipment.POST("", fleetHandler.CreateEquipment)
			equipment.GET("/:id", fleetHandler.GetEquipment)
			equipment.PUT("/:id/active", fleetHandler.SetEquipmentActive)
		}

		drivers := v1.Group("/drivers")
		{
			drivers.GET("", fleetHandler.ListDrivers)
			drivers.POST("", fleetHandler.CreateDriver)
			drivers.GET("/:id", fleetHandler.GetDriver)
			drivers.PUT("/:id/active", fleetHandler.SetDriverActive)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return &Server{Router: router, notifications: notificationService}, nil
}
