package clarifai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/vikarrry7/zoobot/pkg/domain"
)

const (
	apiURL = "https://api.clarifai.com/v2/models/general-image-recognition/versions/aa7f35c01e0642fda5cf400f543e7c40/outputs"

	defaultTimeout = 30 * time.Second

	confidenceThreshold = 0.4
	maxLabels           = 5
)

// ErrMissingAPIKey means the classifier credential was never configured.
// This is a per-call soft failure, not a startup one.
var ErrMissingAPIKey = errors.New("clarifai api key is not set")

// StatusError carries a non-2xx HTTP status from the classifier.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("classifier returned status %d", e.Code)
}

type Client struct {
	apiKey  string
	hc      *http.Client
	baseURL string
}

// NewClient accepts an empty key so the bot can start without the
// classifier configured; Classify then fails per call.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		hc:      &http.Client{Timeout: defaultTimeout},
		baseURL: apiURL,
	}
}

// Classify sends the image file to the classifier and returns its raw
// concept list, unfiltered. Single attempt, no retries.
func (c *Client) Classify(ctx context.Context, imagePath string) ([]domain.Concept, error) {
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("reading image file: %w", err)
	}

	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	reqBody, err := json.Marshal(outputsRequest{
		Inputs: []input{{
			Data: inputData{Image: inputImage{Base64: base64.StdEncoding.EncodeToString(imageData)}},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var or outputsResponse
	if err := json.Unmarshal(respBody, &or); err != nil {
		return nil, fmt.Errorf("failed to parse outputs response: %w", err)
	}
	if len(or.Outputs) == 0 {
		return nil, errors.New("no outputs returned")
	}

	return lo.Map(or.Outputs[0].Data.Concepts, func(c concept, _ int) domain.Concept {
		return domain.Concept{Name: c.Name, Value: c.Value}
	}), nil
}

// TopConcepts filters concepts to confidence above the threshold, orders
// them by descending confidence, and returns the main label plus up to
// five lowercased labels. Empty main label means nothing was confident
// enough.
func TopConcepts(concepts []domain.Concept) (string, []string) {
	filtered := lo.Filter(concepts, func(c domain.Concept, _ int) bool {
		return c.Value > confidenceThreshold
	})
	if len(filtered) == 0 {
		return "", nil
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Value > filtered[j].Value
	})

	labels := lo.Map(filtered, func(c domain.Concept, _ int) string {
		return strings.ToLower(c.Name)
	})
	if len(labels) > maxLabels {
		labels = labels[:maxLabels]
	}
	return labels[0], labels
}
