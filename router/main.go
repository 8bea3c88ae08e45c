package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/studysync/studysync-api/config"
	"github.com/studysync/studysync-api/database"
	"github.com/studysync/studysync-api/handlers"
	admin_handlers "github.com/studysync/studysync-api/handlers/admin"
	auth_handlers "github.com/studysync/studysync-api/handlers/auth"
	collab_handlers "github.com/studysync/studysync-api/handlers/collab"
	focus_handlers "github.com/studysync/studysync-api/handlers/focus"
	mentor_handlers "github.com/studysync/studysync-api/handlers/mentor"
	note_handlers "github.com/studysync/studysync-api/handlers/note"
	task_handlers "github.com/studysync/studysync-api/handlers/task"
	"github.com/studysync/studysync-api/services"
	"github.com/studysync/studysync-api/services/inference"
	"github.com/studysync/studysync-api/utils/auth"
	"github.com/studysync/studysync-api/utils/cache"
	"github.com/studysync/studysync-api/utils/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires the full route surface onto the fiber app
func SetupRoutes(app *fiber.App, store database.Storage, getEnv *config.EnviornmentVariable) {
	if getEnv.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := getEnv.JWT_ISSUER
	if jwtIssuer == "" {
		jwtIssuer = "studysync-api"
	}

	jwtConfig := auth.JWTConfig{
		Secret: getEnv.JWT_SECRET,
		Expiry: time.Duration(getEnv.JWT_EXPIRE_MINUTES) * time.Minute,
		Issuer: jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Login throttling is optional; the service runs unthrottled when Redis
	// is unreachable.
	var bruteForceProtection *middleware.BruteForceProtection
	redisURL := getEnv.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}
	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Login throttling will be disabled.", err)
	} else {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)

	taskHandler := task_handlers.NewTaskHandler(db)
	noteHandler := note_handlers.NewNoteHandler(db)
	focusHandler := focus_handlers.NewFocusHandler(db)
	collabHandler := collab_handlers.NewCollabHandler(db)
	adminHandler := admin_handlers.NewAdminHandler(db)

	llm := inference.NewClient(inference.Config{
		APIKey:  getEnv.AI_API_KEY,
		BaseURL: getEnv.AI_BASE_URL,
		Model:   getEnv.AI_MODEL,
	})
	mentorService := services.NewMentorService(db, llm)
	mentorHandler := mentor_handlers.NewMentorHandler(db, mentorService)

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    getEnv.ALLOWED_ORIGINS,
		RateLimitRequests: getEnv.RATE_LIMIT_MAX,
		RateLimitWindow:   1 * time.Minute,
	})

	// Health check endpoint (public)
	app.Get("/ping", func(c *fiber.Ctx) error { return handlers.HandleCheckHealth(c, store) })

	api := app.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckLockout(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Get("/me", authMiddleware.Required(), authHandler.Me)

	// Task routes (owner-scoped)
	tasks := api.Group("/tasks", authMiddleware.Required())
	tasks.Post("/", taskHandler.CreateTask)
	tasks.Get("/", taskHandler.ListTasks)
	tasks.Patch("/:id", taskHandler.UpdateTask)
	tasks.Delete("/:id", taskHandler.DeleteTask)

	// Note routes (shared reads, owner-or-admin delete)
	notes := api.Group("/notes", authMiddleware.Required())
	notes.Post("/", noteHandler.CreateNote)
	notes.Get("/", noteHandler.ListNotes)
	notes.Get("/:id", noteHandler.GetNote)
	notes.Delete("/:id", noteHandler.DeleteNote)

	// Focus session routes (append-only)
	focus := api.Group("/focus", authMiddleware.Required())
	focus.Post("/sessions", focusHandler.CreateSession)
	focus.Get("/sessions", focusHandler.ListSessions)

	// Collaboration routes
	collab := api.Group("/collab", authMiddleware.Required())
	collab.Post("/rooms", collabHandler.CreateRoom)
	collab.Get("/rooms", collabHandler.ListRooms)
	collab.Post("/rooms/:id/join", collabHandler.JoinRoom)
	collab.Get("/rooms/:id/messages", collabHandler.ListMessages)
	collab.Post("/rooms/:id/messages", collabHandler.SendMessage)

	// AI mentor routes
	ai := api.Group("/ai", authMiddleware.Required())
	ai.Post("/mentor", mentorHandler.Chat)
	ai.Get("/mentor/history/:sessionId", mentorHandler.History)
	ai.Post("/summarize", mentorHandler.Summarize)

	// Admin routes: any authenticated non-admin receives Forbidden
	admin := api.Group("/admin", authMiddleware.RequireAdmin())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Patch("/users/:id/role", adminHandler.UpdateRole)
	admin.Patch("/users/:id/ban", adminHandler.BanUser)
	admin.Patch("/users/:id/unban", adminHandler.UnbanUser)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/analytics", adminHandler.GetAnalytics)
	admin.Get("/logs", adminHandler.ListLogs)
}
