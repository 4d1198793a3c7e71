package main

import (
	"log"
	"os"

	"backend/cache"
	"backend/config"
	"backend/controllers"
	"backend/repository"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.LoadEnv()
	db := config.InitDB()

	uploader, err := utils.NewS3Uploader()
	if err != nil {
		log.Fatalf("Failed to initialize S3 uploader: %v", err)
	}
	ocr, err := services.NewOCRService()
	if err != nil {
		log.Fatalf("Failed to initialize Textract client: %v", err)
	}
	vision, err := services.NewRekognitionService()
	if err != nil {
		log.Fatalf("Failed to initialize Rekognition client: %v", err)
	}
	narrator, err := services.NewBedrockService()
	if err != nil {
		log.Fatalf("Failed to initialize Bedrock client: %v", err)
	}

	rc, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Barcode cache disabled: %v", err)
		rc = nil
	}

	hub := services.NewRealtimeHub()
	repo := repository.NewAnalysisRepository(db)
	resolver := services.NewBarcodeService(rc)

	analysisSvc := services.NewAnalysisService(
		uploader, ocr, vision, resolver, narrator,
		utils.ExtractNutritionFacts, repo, hub,
	)

	r := routes.SetupRouter(
		controllers.NewAnalysisController(analysisSvc),
		controllers.NewHistoryController(repo),
		controllers.NewRealtimeController(hub),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
