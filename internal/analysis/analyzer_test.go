package analysis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acfinder/internal/model"
)

func btu(n int) *int { return &n }

func TestRenderProducts(t *testing.T) {
	products := []model.Product{
		{Brand: "Singer", Name: "18000 BTU Split Unit", Btu: btu(18000), Price: "Rs. 215,000"},
		{Brand: "Abans", Name: "Portable AC", Price: "N/A"},
	}

	table := RenderProducts(products)

	lines := strings.Split(table, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "- Singer: 18000 BTU Split Unit | BTU: 18000 | Price: Rs. 215,000", lines[0])
	assert.Equal(t, "- Abans: Portable AC | BTU: unknown | Price: N/A", lines[1])
}

// An empty catalog short-circuits before any API call; a nil client proves
// that the network is never touched.
func TestAnalyzeEmptyCatalog(t *testing.T) {
	a := &Analyzer{Client: nil, Model: "gpt-4"}

	assert.Equal(t, NoProductsMessage, a.Analyze(nil))
	assert.Equal(t, NoProductsMessage, a.Analyze([]model.Product{}))
}

func newStubAnalyzer(t *testing.T, handler http.HandlerFunc) (*Analyzer, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"

	return &Analyzer{Client: openai.NewClientWithConfig(cfg), Model: "gpt-4"}, srv
}

func TestAnalyzeReturnsCompletion(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	a, srv := newStubAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: "assistant", Content: "Singer wins on value."}},
			},
		})
	})
	defer srv.Close()

	products := []model.Product{
		{Brand: "Singer", Name: "12000 BTU Split", Btu: btu(12000), Price: "Rs. 189,999"},
	}

	answer := a.Analyze(products)

	assert.Equal(t, "Singer wins on value.", answer)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, SystemPrompt(), gotReq.Messages[0].Content)
	assert.Contains(t, gotReq.Messages[1].Content, "- Singer: 12000 BTU Split | BTU: 12000 | Price: Rs. 189,999")
	assert.Contains(t, gotReq.Messages[1].Content, "Best value for money")
	assert.Equal(t, float32(0.7), gotReq.Temperature)
	assert.Equal(t, 500, gotReq.MaxTokens)
}

func TestAnalyzeFailureBecomesMessage(t *testing.T) {
	a, srv := newStubAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	})
	defer srv.Close()

	answer := a.Analyze([]model.Product{
		{Brand: "Abans", Name: "24000 BTU Inverter", Btu: btu(24000), Price: "Rs. 310,000"},
	})

	assert.True(t, strings.HasPrefix(answer, "AI analysis failed:"), answer)
}
