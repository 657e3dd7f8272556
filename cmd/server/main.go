package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/genealogy"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/handlers"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/middleware"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/repositories"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/services"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/workers"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/pkg/config"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/pkg/database"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Pick the person backend
	var backend services.PersonBackend
	if config.AppConfig.Tree.Storage == "memory" {
		backend = repositories.NewMemoryPersonRepository()
	} else {
		if err := database.Init(); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer database.Close()
		backend = repositories.NewPersonRepository(database.DB)
	}

	// Initialize dependencies
	store := genealogy.NewStore()
	renderer := services.NewPageRenderer()
	treeService := services.NewTreeService(backend, store, renderer)
	exportService := services.NewExportService(treeService)

	// Populate the tree before serving
	if err := treeService.Load(); err != nil {
		log.Fatalf("Failed to load people: %v", err)
	}

	// Initialize worker manager
	workerManager := workers.NewWorkerManager(treeService)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// Setup static files
	router.Static("/static", "./web/static")

	// Setup routes
	setupRoutes(router, treeService, exportService, renderer)
	loadTemplates(router)

	// Start workers
	if err := workerManager.StartAll(); err != nil {
		log.Fatalf("Failed to start workers: %v", err)
	}
	defer workerManager.StopAll()

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

func setupRoutes(router *gin.Engine, treeService *services.TreeService, exportService *services.ExportService, renderer *services.PageRenderer) {
	// Initialize handlers
	treeHandler := handlers.NewTreeHandler(treeService, exportService, renderer)
	peopleHandler := handlers.NewPeopleHandler(treeService)
	healthHandler := handlers.NewHealthHandler()

	// Tree pages
	router.GET("/", treeHandler.Index)
	router.GET("/parallax", treeHandler.Parallax)
	router.GET("/export", treeHandler.Export)

	// People API consumed by the edit modal
	people := router.Group("/people")
	{
		people.GET("", peopleHandler.List)
		people.POST("", peopleHandler.CreatePerson)
		people.GET("/:id", peopleHandler.GetPerson)
		people.POST("/:id", peopleHandler.UpdatePerson)
		people.POST("/:id/delete", peopleHandler.DeletePerson)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}

func loadTemplates(router *gin.Engine) {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal("Couldn't get working directory:", err)
	}

	router.LoadHTMLFiles(
		filepath.Join(cwd, "web/templates/layouts/header.html"),
		filepath.Join(cwd, "web/templates/layouts/footer.html"),
		filepath.Join(cwd, "web/templates/layouts/modal.html"),
		filepath.Join(cwd, "web/templates/tree.html"),
		filepath.Join(cwd, "web/templates/parallax.html"),
	)
}
