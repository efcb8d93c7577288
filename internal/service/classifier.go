package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"core/internal/config"
)

// Classifier calls an external model-serving endpoint and maps its raw
// output vector to per-class confidence scores. The model itself is a
// black box; this client only knows the predict contract and the
// index-to-class mapping produced by the training pipeline.
type Classifier struct {
	config       *config.ClassifierConfig
	httpClient   *http.Client
	indexToClass map[string]string
}

// NewClassifier creates a classifier client. A missing class-indices
// file is a startup-time fatal condition, not a per-request one.
func NewClassifier(cfg *config.ClassifierConfig) (*Classifier, error) {
	if cfg.ModelURL == "" {
		return nil, fmt.Errorf("classifier model URL is not configured")
	}

	indexToClass, err := loadClassIndices(cfg.ClassIndicesPath)
	if err != nil {
		return nil, err
	}

	log.Printf("🔧 Classifier endpoint: %s (model: %s, %d classes)", cfg.ModelURL, cfg.ModelName, len(indexToClass))

	return &Classifier{
		config:       cfg,
		indexToClass: indexToClass,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}, nil
}

// loadClassIndices reads the index -> class label mapping written by the
// training script
func loadClassIndices(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class indices from %s: %w", path, err)
	}

	var indexToClass map[string]string
	if err := json.Unmarshal(data, &indexToClass); err != nil {
		return nil, fmt.Errorf("failed to parse class indices from %s: %w", path, err)
	}

	if len(indexToClass) == 0 {
		return nil, fmt.Errorf("class indices file %s contains no classes", path)
	}

	return indexToClass, nil
}

// predictRequest is a TensorFlow Serving style predict request; each
// instance is one preprocessed image (height x width x RGB floats)
type predictRequest struct {
	Instances [][][][]float32 `json:"instances"`
}

// predictResponse is the predict API response
type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
	Error       string      `json:"error,omitempty"`
}

// Classify sends one preprocessed image to the model endpoint and
// returns the per-class confidence scores keyed by class label. Output
// indices with no known label are reported under the "Unknown" sentinel.
func (c *Classifier) Classify(ctx context.Context, pixels [][][]float32) (map[string]float64, error) {
	reqBody, err := json.Marshal(predictRequest{
		Instances: [][][][]float32{pixels},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal predict request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/models/%s:predict", strings.TrimRight(c.config.ModelURL, "/"), c.config.ModelName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("predict request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read predict response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("predict API returned status %d: %s", resp.StatusCode, string(body))
	}

	var predictResp predictResponse
	if err := json.Unmarshal(body, &predictResp); err != nil {
		return nil, fmt.Errorf("failed to parse predict response: %w", err)
	}
	if predictResp.Error != "" {
		return nil, fmt.Errorf("predict API error: %s", predictResp.Error)
	}
	if len(predictResp.Predictions) == 0 || len(predictResp.Predictions[0]) == 0 {
		return nil, fmt.Errorf("predict API returned no predictions")
	}

	scores := make(map[string]float64, len(predictResp.Predictions[0]))
	for i, score := range predictResp.Predictions[0] {
		label, ok := c.indexToClass[strconv.Itoa(i)]
		if !ok {
			label = UnknownLabel
		}
		// Keep the max on label collision (only possible via Unknown)
		if existing, exists := scores[label]; !exists || score > existing {
			scores[label] = score
		}
	}

	return scores, nil
}

// Classes returns the number of classes the model reports
func (c *Classifier) Classes() int {
	return len(c.indexToClass)
}
