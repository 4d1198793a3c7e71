package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"backend/models"
	"backend/repository"

	"gorm.io/datatypes"
)

// Collaborator seams for the pipeline stages. Concrete implementations live
// in utils (S3Uploader) and in this package; tests substitute their own.
type Uploader interface {
	UploadImage(ctx context.Context, user, filename string, data []byte) (string, error)
}

type TextExtractor interface {
	ExtractText(ctx context.Context, key string) (string, error)
}

type LabelDetector interface {
	DetectLabels(ctx context.Context, image []byte) ([]string, error)
}

type ProductResolver interface {
	Lookup(ctx context.Context, barcode string) (*models.Product, error)
}

type Narrator interface {
	GenerateAnalysis(ctx context.Context, productInfo string, barcodeUsed bool, profile models.UserProfile) string
}

type FactExtractor func(text string) map[string]float64

// AnalysisService runs the image-to-narrative pipeline: persist the image,
// OCR it, resolve the barcode when one was scanned, reconcile the two
// sources, generate the narrative, and record the result. Stages run
// strictly in that order; each one blocks until done.
type AnalysisService struct {
	uploader Uploader
	ocr      TextExtractor
	vision   LabelDetector
	resolver ProductResolver
	narrator Narrator
	extract  FactExtractor
	repo     repository.AnalysisRepository
	hub      *RealtimeHub
}

func NewAnalysisService(
	uploader Uploader,
	ocr TextExtractor,
	vision LabelDetector,
	resolver ProductResolver,
	narrator Narrator,
	extract FactExtractor,
	repo repository.AnalysisRepository,
	hub *RealtimeHub,
) *AnalysisService {
	return &AnalysisService{
		uploader: uploader,
		ocr:      ocr,
		vision:   vision,
		resolver: resolver,
		narrator: narrator,
		extract:  extract,
		repo:     repo,
		hub:      hub,
	}
}

// Analyze processes one decoded request. Failures in the optional
// enrichment stages (barcode lookup, label hints, narrative) never abort the
// run; failures in the mandatory stages (upload, OCR) do.
func (s *AnalysisService) Analyze(ctx context.Context, req *models.AnalyzeRequest, image []byte) (*models.AnalysisResult, error) {
	key, err := s.uploader.UploadImage(ctx, req.User, req.Filename, image)
	if err != nil {
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	text, err := s.ocr.ExtractText(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("ocr failed: %w", err)
	}

	// Always extracted, even when a barcode lookup will supersede it.
	ocrFacts := s.extract(text)
	log.Printf("Nutrition facts extracted for %s: %d keys", req.Filename, len(ocrFacts))

	var labels []string
	if s.vision != nil {
		labels, err = s.vision.DetectLabels(ctx, image)
		if err != nil {
			log.Printf("Label detection failed: %v", err)
			labels = nil
		}
	}

	var product *models.Product
	if req.Barcode != "" {
		product, err = s.resolver.Lookup(ctx, req.Barcode)
		if err != nil {
			log.Printf("Barcode %s lookup failed, falling back to OCR facts: %v", req.Barcode, err)
			product = nil
		}
	}

	facts, productInfo, barcodeUsed := Reconcile(product, ocrFacts, labels)

	narrative := s.narrator.GenerateAnalysis(ctx, productInfo, barcodeUsed, req.UserContext)

	result := &models.AnalysisResult{
		User:     req.User,
		Response: narrative,
		Facts:    facts,
	}
	if barcodeUsed {
		result.ProductName = product.Name
		result.ImageURL = product.ImageURL
	}

	if result.HasData() {
		if err := s.saveRecord(req, result); err != nil {
			return nil, fmt.Errorf("failed to record analysis: %w", err)
		}
	} else {
		log.Printf("No nutrition data found for %s, skipping history write", req.Filename)
	}

	if s.hub != nil {
		s.hub.BroadcastAnalysis(req.User, AnalysisEvent{
			User:        req.User,
			Filename:    req.Filename,
			ProductName: result.ProductName,
			Response:    result.Response,
		})
	}

	return result, nil
}

func (s *AnalysisService) saveRecord(req *models.AnalyzeRequest, result *models.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.repo.Create(&models.AnalysisRecord{
		User:      req.User,
		Filename:  req.Filename,
		Timestamp: time.Now(),
		Result:    datatypes.JSON(payload),
	})
}
