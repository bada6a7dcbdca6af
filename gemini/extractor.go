// Package gemini implements frontpage.Extractor using the Gemini API with
// schema-constrained JSON output.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/newsdesk/frontpage"
	"google.golang.org/genai"
)

// Ensure Extractor implements frontpage.Extractor at compile time.
var _ frontpage.Extractor = (*Extractor)(nil)

// Extractor classifies scraped homepage text into categorized news using a
// single GenerateContent call. There are no retries; a failed call surfaces
// as an error for the run to report.
type Extractor struct {
	client      *genai.Client
	model       string
	categories  []frontpage.Category
	perspective string
}

// NewExtractor creates a new Extractor. The perspective biases article
// prioritization in the prompt, e.g. "Indian".
func NewExtractor(client *genai.Client, model string, categories []frontpage.Category, perspective string) *Extractor {
	return &Extractor{
		client:      client,
		model:       model,
		categories:  categories,
		perspective: perspective,
	}
}

// Extract sends the combined homepage text to Gemini and decodes the
// structured response.
func (e *Extractor) Extract(ctx context.Context, text string) (frontpage.CategorizedNews, error) {
	if text == "" {
		return nil, frontpage.Errorf(frontpage.EINVALID, "no content to extract news from")
	}

	prompt := BuildPrompt(text, e.categories, e.perspective)
	config := BuildConfig(e.categories)

	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EUNAVAILABLE, "error communicating with Gemini API: %v", err)
	}
	if result == nil {
		return nil, frontpage.Errorf(frontpage.EINTERNAL, "gemini returned nil result")
	}

	return DecodeNews(result.Text())
}

// DecodeNews parses the model's JSON response. The raw text is embedded in
// the error message on parse failure so the run output shows what the model
// actually returned.
func DecodeNews(raw string) (frontpage.CategorizedNews, error) {
	var news frontpage.CategorizedNews
	if err := json.Unmarshal([]byte(raw), &news); err != nil {
		return nil, frontpage.Errorf(frontpage.EINTERNAL, "model returned invalid JSON: %v; raw text: %s", err, raw)
	}
	return news, nil
}

// BuildConfig returns the GenerateContentConfig forcing schema-constrained
// JSON output for the given categories.
func BuildConfig(categories []frontpage.Category) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   ResponseSchema(categories),
	}
}

// ResponseSchema builds the strict output schema: one required array of
// articles per category, each article carrying a headline, a summary, and
// key points in fixed property order.
func ResponseSchema(categories []frontpage.Category) *genai.Schema {
	articleSchema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"headline": {
				Type:        genai.TypeString,
				Description: "The main headline of the news article.",
			},
			"summary": {
				Type:        genai.TypeString,
				Description: "A brief summary of the article (2-3 sentences).",
			},
			"key_points": {
				Type:        genai.TypeArray,
				Description: "A list of the 2-4 most critical takeaways.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required:         []string{"headline", "summary", "key_points"},
		PropertyOrdering: []string{"headline", "summary", "key_points"},
	}

	properties := make(map[string]*genai.Schema, len(categories))
	required := make([]string, 0, len(categories))
	for _, cat := range categories {
		properties[string(cat)] = &genai.Schema{
			Type:        genai.TypeArray,
			Description: fmt.Sprintf("List of articles belonging to the %s category.", cat),
			Items:       articleSchema,
		}
		required = append(required, string(cat))
	}

	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   required,
	}
}

// BuildPrompt builds the extraction prompt: the instructions followed by the
// combined website content.
func BuildPrompt(text string, categories []frontpage.Category, perspective string) string {
	quoted := make([]string, 0, len(categories))
	for _, cat := range categories {
		quoted = append(quoted, fmt.Sprintf("%q", string(cat)))
	}

	var sb strings.Builder
	sb.WriteString("You are a news content extractor. Your response MUST be a single, raw JSON object (no wrappers, no prose) that strictly adheres to the provided JSON schema.\n\n")
	sb.WriteString("From the following website content, please:\n\n")
	sb.WriteString("1. Identify and extract the main news articles.\n")
	fmt.Fprintf(&sb, "2. Classify each article into one of the following categories: %s.\n", strings.Join(quoted, ", "))
	sb.WriteString("3. For each article, provide: Headline, Brief summary (2-3 sentences), and Key points (a list of critical takeaways).\n")
	sb.WriteString("4. Filter out advertisements, navigation menus, and all irrelevant, non-news content.\n")
	fmt.Fprintf(&sb, "5. Prioritize articles by their importance, scale and effect from the %s perspective.\n", perspective)
	sb.WriteString("6. Skip an article if the same news has already been covered.\n\n")
	sb.WriteString("If a category has no content, its array should be empty ([]).\n\n")
	sb.WriteString("Website Content:\n")
	sb.WriteString(text)
	return sb.String()
}
