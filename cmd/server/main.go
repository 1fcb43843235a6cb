package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/mkaneko/rpg-character-api/internal/config"
	"github.com/mkaneko/rpg-character-api/internal/constants"
	"github.com/mkaneko/rpg-character-api/internal/database"
	"github.com/mkaneko/rpg-character-api/internal/handlers"
	"github.com/mkaneko/rpg-character-api/internal/middleware"
	"github.com/mkaneko/rpg-character-api/internal/repository"
	"github.com/mkaneko/rpg-character-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations and seed the skill catalog
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.SeedSkills(database.GetDB()); err != nil {
		log.Fatalf("Failed to seed skill catalog: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,                        // Redis pool size
		"tcp",                     // network type
		redisAddr,                 // Redis address from config
		"",                        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	weaponRepo := repository.NewWeaponRepository(db)
	skillRepo := repository.NewSkillRepository(db)

	authService := services.NewAuthService(userRepo)
	characterService := services.NewCharacterService(characterRepo, skillRepo)
	weaponService := services.NewWeaponService(characterRepo, weaponRepo)
	skillService := services.NewSkillService(skillRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	characterHandler := handlers.NewCharacterHandler(characterService)
	weaponHandler := handlers.NewWeaponHandler(weaponService)
	skillHandler := handlers.NewSkillHandler(skillService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "RPG Character API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Character routes (protected)
		characters := api.Group("/characters")
		characters.Use(middleware.RequireAuth())
		{
			characters.POST("", characterHandler.CreateCharacter)
			characters.GET("", characterHandler.ListCharacters)
			characters.PUT("", characterHandler.UpdateCharacter)
			characters.GET("/:id", characterHandler.GetCharacter)
			characters.DELETE("/:id", characterHandler.DeleteCharacter)
			characters.POST("/skill", characterHandler.AttachSkill)
		}

		// Weapon routes (protected)
		weapons := api.Group("/weapons")
		weapons.Use(middleware.RequireAuth())
		{
			weapons.POST("", weaponHandler.AddWeapon)
		}

		// Skill catalog routes (protected, read-only)
		skills := api.Group("/skills")
		skills.Use(middleware.RequireAuth())
		{
			skills.GET("", skillHandler.ListSkills)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
