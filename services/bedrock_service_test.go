package services

import (
	"context"
	"errors"
	"testing"

	"backend/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/stretchr/testify/assert"
)

func sampleProfile() models.UserProfile {
	return models.UserProfile{
		WeightLbs:         150,
		HeightIn:          65,
		ActivityLevel:     "Moderately Active",
		Allergies:         []string{"Nuts"},
		ChronicConditions: []string{"High Blood Pressure"},
		DietaryPreference: "Low Sodium",
		CalorieGoal:       2000,
		MacroTargets:      models.MacroTargets{ProteinPct: 30, CarbsPct: 40, FatsPct: 30},
	}
}

func TestBuildPromptHasThreeSections(t *testing.T) {
	prompt := buildPrompt("Nutrition Facts: {}", false, sampleProfile())

	assert.Contains(t, prompt, "Product Summary")
	assert.Contains(t, prompt, "Personalized Health Analysis & Safety Check")
	assert.Contains(t, prompt, "Detailed Recommendations & Alternatives")
}

func TestBuildPromptDataQualityCaveat(t *testing.T) {
	withBarcode := buildPrompt("info", true, sampleProfile())
	assert.Contains(t, withBarcode, barcodeDataQuality)
	assert.NotContains(t, withBarcode, ocrDataQuality)

	withoutBarcode := buildPrompt("info", false, sampleProfile())
	assert.Contains(t, withoutBarcode, ocrDataQuality)
	assert.NotContains(t, withoutBarcode, barcodeDataQuality)
}

func TestBuildPromptCarriesProductInfoAndProfile(t *testing.T) {
	prompt := buildPrompt("Product Name: Choco Crunch", true, sampleProfile())

	assert.Contains(t, prompt, "Product Name: Choco Crunch")
	assert.Contains(t, prompt, "\"dietary_preference\": \"Low Sodium\"")
	assert.Contains(t, prompt, "\"calorie_goal\": 2000")
	assert.Contains(t, prompt, "\"protein_pct\": 30")
}

type fakeRAGClient struct {
	text string
	err  error
}

func (f *fakeRAGClient) RetrieveAndGenerate(ctx context.Context, params *bedrockagentruntime.RetrieveAndGenerateInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.RetrieveAndGenerateOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockagentruntime.RetrieveAndGenerateOutput{
		Output: &types.RetrieveAndGenerateOutput{Text: aws.String(f.text)},
	}, nil
}

func TestGenerateAnalysisTrimsResponse(t *testing.T) {
	svc := &BedrockService{
		client:          &fakeRAGClient{text: "\n  ## Product Summary\nLooks fine.\n\n"},
		knowledgeBaseID: "kb-test",
		modelArn:        "arn:aws:bedrock:us-west-2::foundation-model/test",
	}

	out := svc.GenerateAnalysis(context.Background(), "info", true, sampleProfile())

	assert.Equal(t, "## Product Summary\nLooks fine.", out)
}

func TestGenerateAnalysisFallsBackOnError(t *testing.T) {
	svc := &BedrockService{
		client:          &fakeRAGClient{err: errors.New("knowledge base misconfigured")},
		knowledgeBaseID: "kb-test",
		modelArn:        "arn:aws:bedrock:us-west-2::foundation-model/test",
	}

	out := svc.GenerateAnalysis(context.Background(), "info", false, sampleProfile())

	assert.Equal(t, FallbackResponse, out)
}

func TestGenerateAnalysisFallsBackOnEmptyOutput(t *testing.T) {
	svc := &BedrockService{
		client:          &emptyRAGClient{},
		knowledgeBaseID: "kb-test",
		modelArn:        "arn:aws:bedrock:us-west-2::foundation-model/test",
	}

	out := svc.GenerateAnalysis(context.Background(), "info", false, sampleProfile())

	assert.Equal(t, FallbackResponse, out)
}

type emptyRAGClient struct{}

func (e *emptyRAGClient) RetrieveAndGenerate(ctx context.Context, params *bedrockagentruntime.RetrieveAndGenerateInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.RetrieveAndGenerateOutput, error) {
	return &bedrockagentruntime.RetrieveAndGenerateOutput{}, nil
}
