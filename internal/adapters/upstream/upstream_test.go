package upstream

import (
	"context"
	"encoding/json"
	"harvest-planner/internal/domain"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
	"generatedMarkets": [{"id": "m1", "name": "Azadpur Mandi", "location": "Delhi", "distance": 45, "currentPrice": 2350, "projectedPrice7Days": 2420, "volatility": "low", "demand": "high"}],
	"comparisons": [{"marketId": "m1", "marketName": "Azadpur Mandi", "scenario": "now", "grossRevenue": 235000, "transportCost": 1125, "storageCost": 0, "storageLoss": 0, "netRevenue": 233875, "profitMargin": 6.3}],
	"recommendation": {"bestMarketId": "m1", "bestScenario": "now", "reasoning": "Close market with strong demand."}
}`

func TestAnalysisGatewaySendsFarmContext(t *testing.T) {
	var got map[string]any
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, sampleDocument)
	}))
	defer srv.Close()

	g, err := NewAnalysisGateway(srv.URL, "secret", time.Second)
	require.NoError(t, err)
	g.now = func() time.Time { return time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC) }

	doc, err := g.Analyze(context.Background(), domain.FarmContext{CropID: "wheat", Quantity: 100, Location: "Karnal", StorageType: "Warehouse"})
	require.NoError(t, err)
	require.Len(t, doc.GeneratedMarkets, 1)
	assert.Equal(t, "Azadpur Mandi", doc.GeneratedMarkets[0].Name)
	assert.Equal(t, 45.0, doc.GeneratedMarkets[0].DistanceKm)
	assert.Equal(t, domain.ScenarioNow, doc.Recommendation.BestScenario)
	assert.Equal(t, 233875.0, doc.Comparisons[0].NetRevenue)

	assert.Equal(t, "Bearer secret", auth)
	farm := got["farmContext"].(map[string]any)
	assert.Equal(t, "wheat", farm["crop"])
	assert.Equal(t, "Warehouse", farm["storageType"])
	assert.Equal(t, "monsoon", got["season"])
}

func TestAnalysisGatewayStatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusTooManyRequests, domain.ErrRateLimited},
		{http.StatusPaymentRequired, domain.ErrPaymentRequired},
		{http.StatusInternalServerError, domain.ErrGateway},
	}

	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				http.Error(w, "nope", tc.status)
			}))
			defer srv.Close()

			g, err := NewAnalysisGateway(srv.URL, "", time.Second)
			require.NoError(t, err)

			_, err = g.Analyze(context.Background(), domain.FarmContext{CropID: "wheat"})
			require.ErrorIs(t, err, tc.want)
			code, ok := StatusCode(err)
			assert.True(t, ok)
			assert.Equal(t, tc.status, code)
			assert.Equal(t, 1, calls, "upstream failures are not retried")
		})
	}
}

func TestDecodeDocument(t *testing.T) {
	fenced, _ := json.Marshal(map[string]any{
		"choices": []any{map[string]any{"message": map[string]any{"content": "```json\n" + sampleDocument + "\n```"}}},
	})
	doc, err := decodeDocument(fenced)
	require.NoError(t, err)
	assert.Len(t, doc.Comparisons, 1)

	bad := map[string]string{
		"not json":      `<html>`,
		"empty choices": `{"choices": []}`,
		"no content":    `{"choices": [{"message": {"content": "  "}}]}`,
		"no markets":    `{"recommendation": {"bestMarketId": "m1"}}`,
		"prose content": `{"choices": [{"message": {"content": "Sorry, I cannot help."}}]}`,
	}
	for name, body := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := decodeDocument([]byte(body))
			assert.ErrorIs(t, err, domain.ErrMalformedResponse)
		})
	}
}

func TestPriceService(t *testing.T) {
	var cropID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		cropID = req["cropId"]

		switch cropID {
		case "wheat":
			_, _ = io.WriteString(w, `{"success": true, "data": {"markets": [{"id": "mandi-a", "name": "Azadpur Mandi", "currentPrice": 2350, "volatility": "medium", "demand": "high"}], "metadata": {"source": "Simulated Agmarknet API", "refreshInterval": 300}}}`)
		case "empty":
			_, _ = io.WriteString(w, `{"success": true, "data": {"markets": []}}`)
		default:
			_, _ = io.WriteString(w, `{"success": false, "error": "unknown crop"}`)
		}
	}))
	defer srv.Close()

	p, err := NewPriceService(srv.URL, time.Second)
	require.NoError(t, err)

	got, err := p.FetchMarkets(context.Background(), "wheat")
	require.NoError(t, err)
	assert.Equal(t, "wheat", cropID)
	require.Len(t, got.Markets, 1)
	assert.Equal(t, domain.LevelHigh, got.Markets[0].Demand)
	assert.Equal(t, 300, got.Metadata.RefreshInterval)

	_, err = p.FetchMarkets(context.Background(), "empty")
	assert.ErrorIs(t, err, domain.ErrNoMarketData)

	_, err = p.FetchMarkets(context.Background(), "saffron")
	assert.ErrorIs(t, err, domain.ErrGateway)
	assert.ErrorContains(t, err, "unknown crop")

	_, err = NewPriceService(" ", time.Second)
	assert.Error(t, err)
}
