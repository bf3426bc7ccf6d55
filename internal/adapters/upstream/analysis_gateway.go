package upstream

import (
	"context"
	"fmt"
	"harvest-planner/internal/domain"
	"harvest-planner/internal/platform/obs"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// AnalysisGateway calls the external market/weather/price generation service.
type AnalysisGateway struct {
	client
	now func() time.Time
}

func NewAnalysisGateway(url, apiKey string, timeout time.Duration) (*AnalysisGateway, error) {
	c, err := newClient(url, apiKey, timeout)
	if err != nil {
		return nil, fmt.Errorf("analysis gateway: %w", err)
	}
	return &AnalysisGateway{client: c, now: time.Now}, nil
}

type farmPayload struct {
	Crop        string  `json:"crop"`
	Quantity    float64 `json:"quantity"`
	Location    string  `json:"location"`
	StorageType string  `json:"storageType"`
}

type analyzeRequest struct {
	FarmContext farmPayload `json:"farmContext"`
	Season      string      `json:"season"`
}

// completion is the chat-completion envelope some deployments return
// instead of the bare document.
type completion struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *AnalysisGateway) Analyze(ctx context.Context, farm domain.FarmContext) (_ *domain.AnalysisDocument, err error) {
	defer obs.Time(ctx, "gateway.Analyze")(&err)

	body, err := g.post(ctx, analyzeRequest{
		FarmContext: farmPayload{
			Crop:        farm.CropID,
			Quantity:    farm.Quantity,
			Location:    farm.Location,
			StorageType: farm.StorageType,
		},
		Season: domain.Season(g.now()),
	})
	if err != nil {
		return nil, fmt.Errorf("analyze market: %w", err)
	}

	doc, err := decodeDocument(body)
	if err != nil {
		return nil, fmt.Errorf("analyze market: %w", err)
	}
	return doc, nil
}

// decodeDocument accepts either the document itself or a completion whose
// first message carries it, optionally inside a ```json fence.
func decodeDocument(body []byte) (*domain.AnalysisDocument, error) {
	var env completion
	if err := sonic.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	if env.Choices != nil {
		if len(env.Choices) == 0 || strings.TrimSpace(env.Choices[0].Message.Content) == "" {
			return nil, fmt.Errorf("%w: no content in response", domain.ErrMalformedResponse)
		}
		body = []byte(stripFence(env.Choices[0].Message.Content))
	}

	var doc domain.AnalysisDocument
	if err := sonic.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	if len(doc.GeneratedMarkets) == 0 && len(doc.Comparisons) == 0 {
		return nil, fmt.Errorf("%w: document has no markets", domain.ErrMalformedResponse)
	}
	return &doc, nil
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
