package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"fitness-backend/internal/classifier"
	"fitness-backend/internal/features"
)

// Client implements classifier.Client against an HTTP inference service.
type Client struct {
	baseURL      string
	modelVersion string
	httpClient   *http.Client
}

// NewClient constructs an inference client for the given base URL.
func NewClient(baseURL, modelVersion string) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("INFERENCE_URL is required")
	}
	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("INFERENCE_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		modelVersion: modelVersion,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type predictRequest struct {
	ModelVersion string          `json:"model_version,omitempty"`
	Features     features.Record `json:"features"`
}

type predictResponse struct {
	Predictions []classifier.Prediction `json:"predictions"`
	Error       *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Predict posts the feature record and returns predictions sorted by
// descending probability.
func (c *Client) Predict(ctx context.Context, rec features.Record) ([]classifier.Prediction, error) {
	payload, err := json.Marshal(predictRequest{ModelVersion: c.modelVersion, Features: rec})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed predictResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON from inference service: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return nil, fmt.Errorf("inference service error: %s", parsed.Error.Message)
		}
		return nil, fmt.Errorf("inference service returned status %d", resp.StatusCode)
	}
	if len(parsed.Predictions) < 3 {
		return nil, fmt.Errorf("inference service returned %d predictions, need at least 3", len(parsed.Predictions))
	}

	out := append([]classifier.Prediction(nil), parsed.Predictions...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Probability > out[j].Probability
	})
	return out, nil
}
