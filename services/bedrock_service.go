package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"backend/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
)

const systemPrompt = `You are a professional health and nutrition expert. Your primary goal is to provide a comprehensive, personalized analysis of a food product.

You have access to a **Knowledge Base containing FDA and USDA guidelines**, to support your analysis, dietary recommendations, and health ratings.

You will receive the product's nutritional information and the user's specific health goals and constraints (allergies, diet, macro targets).

Your response must be formatted in clear Markdown and contain the following sections:
1. Product Summary & Quick Facts
2. Personalized Health Analysis & Safety Check (Reference user goals/constraints)
3. Detailed Recommendations & Alternatives

Keep your tone warm and inviting, but descriptive and knowledgeable.`

const (
	barcodeDataQuality = "The product information is highly detailed, derived from an API lookup, " +
		"and includes product name, category, and precise nutrition facts."
	barcodeFocusNote = "Provide the full analysis, including the product name and alternatives."

	ocrDataQuality = "The product information is based only on OCR output from a label image. " +
		"The product name and category may be missing or approximate. Focus the analysis primarily on the raw nutrition facts."
	ocrFocusNote = "Since full product details may be sparse, focus on 'Health Analysis'."
)

// FallbackResponse is returned in place of a narrative whenever generation
// fails. The rest of the analysis still succeeds.
const FallbackResponse = "Sorry, I couldn't generate insights for that product. Please try again!"

const modelID = "anthropic.claude-3-haiku-20240307-v1:0"

type ragClient interface {
	RetrieveAndGenerate(ctx context.Context, params *bedrockagentruntime.RetrieveAndGenerateInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.RetrieveAndGenerateOutput, error)
}

// BedrockService produces the personalized narrative by querying a Bedrock
// knowledge base seeded with FDA/USDA guideline documents.
type BedrockService struct {
	client          ragClient
	knowledgeBaseID string
	modelArn        string
}

func NewBedrockService() (*BedrockService, error) {
	region := os.Getenv("BEDROCK_REGION")
	if region == "" {
		region = "us-west-2"
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}

	kbID := os.Getenv("KNOWLEDGE_BASE_ID")
	if kbID == "" {
		return nil, fmt.Errorf("KNOWLEDGE_BASE_ID not set")
	}

	return &BedrockService{
		client:          bedrockagentruntime.NewFromConfig(cfg),
		knowledgeBaseID: kbID,
		modelArn:        fmt.Sprintf("arn:aws:bedrock:%s::foundation-model/%s", region, modelID),
	}, nil
}

// buildPrompt assembles the persona, the data-quality caveat picked by the
// barcode-used flag, the product information block, and the serialized user
// profile into a single prompt.
func buildPrompt(productInfo string, barcodeUsed bool, profile models.UserProfile) string {
	dataQuality, focusNote := ocrDataQuality, ocrFocusNote
	if barcodeUsed {
		dataQuality, focusNote = barcodeDataQuality, barcodeFocusNote
	}

	prefs, _ := json.MarshalIndent(profile, "", "  ")

	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n--- START ANALYSIS REQUEST ---\n\n")
	sb.WriteString("**Data Quality:** " + dataQuality + "\n\n")
	sb.WriteString("Product Information:\n" + productInfo + "\n\n")
	sb.WriteString("User Preferences and Goals:\n" + string(prefs) + "\n\n")
	sb.WriteString("Based on the information above, and using the FDA guidelines from your Knowledge Base, perform the analysis.\n\n")
	sb.WriteString(focusNote + "\n\n")
	sb.WriteString("Please provide a succinct, evidence-based analysis, with detailed dietary recommendations.")
	return sb.String()
}

// GenerateAnalysis runs the knowledge-grounded generation call. The call is
// synchronous and the pipeline blocks on it; every provider-side failure is
// swallowed into the fixed fallback so the caller always gets text back.
func (s *BedrockService) GenerateAnalysis(ctx context.Context, productInfo string, barcodeUsed bool, profile models.UserProfile) string {
	prompt := buildPrompt(productInfo, barcodeUsed, profile)

	out, err := s.client.RetrieveAndGenerate(ctx, &bedrockagentruntime.RetrieveAndGenerateInput{
		Input: &types.RetrieveAndGenerateInput{Text: aws.String(prompt)},
		RetrieveAndGenerateConfiguration: &types.RetrieveAndGenerateConfiguration{
			Type: types.RetrieveAndGenerateTypeKnowledgeBase,
			KnowledgeBaseConfiguration: &types.KnowledgeBaseRetrieveAndGenerateConfiguration{
				KnowledgeBaseId: aws.String(s.knowledgeBaseID),
				ModelArn:        aws.String(s.modelArn),
			},
		},
	})
	if err != nil {
		log.Printf("Can't invoke knowledge base: %v", err)
		return FallbackResponse
	}
	if out.Output == nil || out.Output.Text == nil {
		log.Printf("Knowledge base returned an empty output")
		return FallbackResponse
	}

	return strings.TrimSpace(*out.Output.Text)
}
