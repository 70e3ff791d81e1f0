package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"rasoi/internal/analysis"
	"rasoi/internal/auth"
	"rasoi/internal/category"
	"rasoi/internal/db"
	"rasoi/internal/food"
	"rasoi/internal/ingredient"
	"rasoi/internal/inventory"
	"rasoi/internal/llm"
	"rasoi/internal/menugen"
	"rasoi/internal/middleware"
	"rasoi/internal/sale"
	"rasoi/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	if os.Getenv("LLM_PROVIDER") == "gemini" {
		required = append(required, "GEMINI_API_KEY", "GEMINI_MODEL")
	} else {
		required = append(required, "OPENAI_API_KEY")
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	if os.Getenv("SEED_DB") == "true" {
		if err := db.Seed(pgDB); err != nil {
			log.Fatal("❌ Seed failed:", err)
		}
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	// Image uploads are disabled when R2 is not configured.
	var foodStorage food.Storage
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		foodStorage = r2Client
	} else {
		log.Println("⚠️ R2 not configured, image uploads disabled")
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	categoryRepo := category.NewPostgresRepository(pgDB)
	foodRepo := food.NewPostgresRepository(pgDB)
	ingredientRepo := ingredient.NewPostgresRepository(pgDB)
	saleRepo := sale.NewPostgresRepository(pgDB)
	inventorySource := inventory.NewPostgresSource(pgDB)
	menuCatalog := menugen.NewPostgresCatalog(pgDB)

	// ───────────────────────── LLM ─────────────────────────
	llmClient := llm.FromEnv()

	topSurplus := 0
	if v := os.Getenv("MENU_TOP_SURPLUS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("❌ Invalid MENU_TOP_SURPLUS: %q", v)
		}
		topSurplus = n
	}

	// ───────────────────────── SERVICES ─────────────────────────
	categoryService := category.NewService(categoryRepo)
	foodService := food.NewService(foodRepo, foodStorage)
	ingredientService := ingredient.NewService(ingredientRepo, inventorySource)
	saleService := sale.NewService(saleRepo)
	menuService := menugen.NewService(menuCatalog, inventorySource, llmClient, topSurplus)
	analysisService := analysis.NewService(foodService, ingredientService, categoryService, inventorySource)

	// ───────────────────────── HANDLERS ─────────────────────────
	categoryHandler := category.NewHandler(categoryService)
	foodHandler := food.NewHandler(foodService)
	ingredientHandler := ingredient.NewHandler(ingredientService)
	saleHandler := sale.NewHandler(saleService)
	menuHandler := menugen.NewHandler(menuService)
	analysisHandler := analysis.NewHandler(analysisService)

	// ───────────────────────── CATALOG ROUTES ─────────────────────────
	foods := r.Group("/foods")
	{
		foods.GET("", foodHandler.Index)
		foods.GET("/:id", foodHandler.Show)

		protected := foods.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("", foodHandler.Create)
			protected.POST("/:id/image", foodHandler.UploadImage)
		}
	}

	ingredients := r.Group("/ingredients")
	{
		ingredients.GET("", ingredientHandler.Index)
		ingredients.GET("/:id", ingredientHandler.Show)
		ingredients.GET("/:id/remaining", ingredientHandler.ShowRemaining)

		protected := ingredients.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/filter", menuHandler.FilterIngredients)

			admin := protected.Group("")
			admin.Use(middleware.RequireRole(auth.RoleAdmin))
			{
				admin.POST("", ingredientHandler.Create)
			}
		}
	}

	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.Index)
		categories.GET("/:id", categoryHandler.Show)

		protected := categories.Group("")
		protected.Use(
			middleware.AuthMiddleware(),
			middleware.RequireRole(auth.RoleAdmin),
		)
		{
			protected.POST("", categoryHandler.Create)
		}
	}

	// ───────────────────────── SALES ROUTES ─────────────────────────
	sales := r.Group("/sales")
	sales.Use(middleware.AuthMiddleware())
	{
		sales.POST("", saleHandler.Create)
		sales.GET("/recent", saleHandler.Recent)
	}

	// ───────────────────────── MENU + ANALYSIS ─────────────────────────
	r.GET("/analyze", analysisHandler.Analyze)

	menu := r.Group("/menu")
	menu.Use(middleware.AuthMiddleware())
	{
		menu.POST("/generate", menuHandler.Generate)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
