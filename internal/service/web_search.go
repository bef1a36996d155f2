package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type webSearcher struct {
	logger     *zap.Logger
	httpClient *http.Client
}

func NewWebSearcher(logger *zap.Logger) Searcher {
	return &webSearcher{
		logger:     logger,
		httpClient: &http.Client{Timeout: time.Second * 15},
	}
}

func (s *webSearcher) Search(ctx context.Context, query string) ([]SearchResult, error) {
	endpoint := "/search"
	url := viper.GetString("search.origin") + endpoint

	requestBody, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		s.logger.Sugar().Errorf("failed to create search request: %s", err.Error())
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Sugar().Errorf("failed to do search request: %s", err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Sugar().Errorf("failed to read search response body: %s", err.Error())
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Sugar().Errorf("ERROR from search provider endpoint(%s), code(%d)", endpoint, resp.StatusCode)
		return nil, errors.New("search provider request failed")
	}

	var result struct {
		Results []SearchResult `json:"results"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		s.logger.Sugar().Errorf("failed to decode search response body: %s", err.Error())
		return nil, err
	}

	return result.Results, nil
}
