// Package advisor provides an optional AI second opinion on classified
// messages. It never feeds back into the deterministic pipeline; its output
// is advisory and surfaced to the operator only.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/Hariharasudhan07/FinanceApp/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Suggestion is the advisory verdict for one message.
type Suggestion struct {
	Category    string
	Explanation string
}

// Advisor produces category suggestions for messages.
type Advisor interface {
	Suggest(ctx context.Context, text string, record *models.TransactionRecord) (*Suggestion, error)
}

// GeminiAdvisor implements Advisor on the Gemini API. The client is created
// lazily on first use.
type GeminiAdvisor struct {
	apiKey string
	model  string

	mu           sync.Mutex
	geminiClient *genai.Client
	geminiModel  *genai.GenerativeModel
}

// NewGeminiAdvisor configures a Gemini-backed advisor. The client connects
// on the first Suggest call.
func NewGeminiAdvisor(apiKey, model string) *GeminiAdvisor {
	return &GeminiAdvisor{apiKey: apiKey, model: model}
}

// ensureClient initializes the Gemini client if needed.
func (a *GeminiAdvisor) ensureClient(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.geminiClient != nil {
		return nil
	}
	if a.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	a.geminiClient = client
	a.geminiModel = client.GenerativeModel(a.model)
	return nil
}

// Suggest asks the model for a category verdict on the message, given what
// the rule-based classifier already decided.
func (a *GeminiAdvisor) Suggest(ctx context.Context, text string, record *models.TransactionRecord) (*Suggestion, error) {
	if err := a.ensureClient(ctx); err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Review the following SMS financial message classification:
Message: %s
Assigned category: %s
Assigned subcategory: %s
Confidence: %.2f

Valid categories are: loan, credit, debit, investment, insurance, emi, recharge, atm, cheque, informational.

Respond in this format:
Category: [the category you consider correct]
Explanation: [one sentence explaining your choice]`,
		text, record.Category, record.Subcategory, record.Confidence)

	resp, err := a.geminiModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	suggestion := parseSuggestion(responseText)

	log.WithFields(logrus.Fields{
		"category": suggestion.Category,
	}).Debug("received advisory verdict")

	return suggestion, nil
}

// parseSuggestion extracts the structured fields from the model response.
// An unstructured response becomes the explanation verbatim.
func parseSuggestion(response string) *Suggestion {
	var s Suggestion
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			s.Category = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(line, "Category:")))
		} else if strings.HasPrefix(line, "Explanation:") {
			s.Explanation = strings.TrimSpace(strings.TrimPrefix(line, "Explanation:"))
		}
	}
	if s.Category == "" {
		s.Explanation = strings.TrimSpace(response)
	}
	return &s
}
