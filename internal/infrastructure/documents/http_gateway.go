package documents

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"smartcontract/internal/domain/entities"
	"smartcontract/internal/usecase/interfaces"
)

var ErrMissingDocumentServiceURL = errors.New("missing DOCUMENT_SERVICE_URL")
var ErrDocumentGatewayNotConfigured = errors.New("document gateway not configured")

// NoSuggestionsPlaceholder is substituted when the remote review response
// omits the suggestions field. Client-side policy, not a server contract.
const NoSuggestionsPlaceholder = "暂无审核建议"

const (
	generatePath = "/contract/generate"
	reviewPath   = "/contract/review"
)

// HTTPDocumentGateway talks to the remote document service over HTTP.
//
// No retries and no client-side timeout: every failure is surfaced once to
// the calling use case, and deadlines belong to the transport layer (or the
// caller's context).

type HTTPDocumentGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IDocumentGateway = (*HTTPDocumentGateway)(nil)

func NewHTTPDocumentGateway(baseURL string) (*HTTPDocumentGateway, error) {
	if isDocumentGatewayMockEnabled() {
		log.Printf("[document][gateway] mock mode enabled")
		return &HTTPDocumentGateway{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[document][gateway] missing DOCUMENT_SERVICE_URL")
		return nil, ErrMissingDocumentServiceURL
	}

	log.Printf("[document][gateway] document service client initialized url=%s", baseURL)
	return &HTTPDocumentGateway{baseURL: baseURL, client: &http.Client{}}, nil
}

type generateRequest struct {
	TemplateID string                `json:"template_id"`
	Data       entities.ContractData `json:"data"`
}

type generateResponse struct {
	ContractContent string `json:"contract_content"`
}

type reviewRequest struct {
	ContractContent string `json:"contract_content"`
}

type reviewResponse struct {
	ReviewSuggestions string `json:"review_suggestions"`
}

func (g *HTTPDocumentGateway) GenerateContract(ctx context.Context, templateID string, data entities.ContractData) (string, error) {
	if g != nil && g.mockMode {
		log.Printf("[document][gateway] mock generate template_id=%s", templateID)
		return mockContractContent(templateID, data, time.Now()), nil
	}
	if g == nil || g.client == nil {
		return "", ErrDocumentGatewayNotConfigured
	}

	log.Printf("[document][gateway] generate start template_id=%s", templateID)
	var resp generateResponse
	if err := g.postJSON(ctx, generatePath, generateRequest{TemplateID: templateID, Data: data}, &resp); err != nil {
		log.Printf("[document][gateway] generate failed template_id=%s err=%v", templateID, err)
		return "", err
	}
	if resp.ContractContent == "" {
		log.Printf("[document][gateway] generate returned empty content template_id=%s", templateID)
		return "", errors.New("document service returned empty contract_content")
	}
	log.Printf("[document][gateway] generate success template_id=%s content_len=%d", templateID, len(resp.ContractContent))
	return resp.ContractContent, nil
}

func (g *HTTPDocumentGateway) ReviewContract(ctx context.Context, content string) (string, error) {
	if g != nil && g.mockMode {
		log.Printf("[document][gateway] mock review content_len=%d", len(content))
		return mockReviewSuggestions(), nil
	}
	if g == nil || g.client == nil {
		return "", ErrDocumentGatewayNotConfigured
	}

	log.Printf("[document][gateway] review start content_len=%d", len(content))
	var resp reviewResponse
	if err := g.postJSON(ctx, reviewPath, reviewRequest{ContractContent: content}, &resp); err != nil {
		log.Printf("[document][gateway] review failed err=%v", err)
		return "", err
	}

	suggestions := strings.TrimSpace(resp.ReviewSuggestions)
	if suggestions == "" {
		suggestions = NoSuggestionsPlaceholder
	}
	log.Printf("[document][gateway] review success suggestions_len=%d", len(suggestions))
	return suggestions, nil
}

func (g *HTTPDocumentGateway) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("document service responded %d: %s", res.StatusCode, truncate(string(raw), 256))
	}
	return json.Unmarshal(raw, out)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func isDocumentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("DOCUMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
