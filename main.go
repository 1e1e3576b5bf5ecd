package main

import (
	"log"

	"github.com/arjun-kp/PayTrail/config"
	"github.com/arjun-kp/PayTrail/controllers"
	"github.com/arjun-kp/PayTrail/lookup"
	"github.com/arjun-kp/PayTrail/routes"
	"github.com/arjun-kp/PayTrail/tabular"
	"github.com/arjun-kp/PayTrail/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Open the table source the lookup reads from
	var src tabular.Source
	switch cfg.DataSource {
	case config.SourcePostgres:
		db, err := config.InitDB(cfg)
		if err != nil {
			utils.LogError("Failed to connect to database: %v", err)
			log.Fatal("Failed to connect to database:", err)
		}
		src = tabular.NewPostgresSource(db)
	default:
		workbook, err := tabular.OpenWorkbook(cfg.WorkbookPath)
		if err != nil {
			utils.LogError("Failed to open workbook: %v", err)
			log.Fatal("Failed to open workbook:", err)
		}
		src = workbook
	}

	controllers.Init(lookup.NewService(src, cfg.Tables))

	// Set up router (middleware is registered inside, ahead of the routes)
	router := routes.SetupRouter()

	utils.LogInfo("Server starting on port %s (data source: %s)", cfg.Port, cfg.DataSource)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
