package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client talks to the workflow controller REST API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type solverRequest struct {
	Solver     string   `json:"solver"`
	Packages   string   `json:"packages"`
	Indexes    []string `json:"indexes"`
	Transitive bool     `json:"transitive"`
	Debug      bool     `json:"debug"`
}

type allSolversRequest struct {
	Packages string   `json:"packages"`
	Indexes  []string `json:"indexes"`
}

type revSolverRequest struct {
	PackageName    string `json:"package_name"`
	PackageVersion string `json:"package_version"`
	Debug          bool   `json:"debug"`
}

type securityIndicatorRequest struct {
	PackageName         string `json:"package_name"`
	PackageVersion      string `json:"package_version"`
	IndexURL            string `json:"index_url"`
	AggregationFunction string `json:"aggregation_function"`
}

type analysisResponse struct {
	AnalysisID string `json:"analysis_id"`
}

type analysesResponse struct {
	AnalysisIDs []string `json:"analysis_ids"`
}

type solverNamesResponse struct {
	Solvers []string `json:"solvers"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.New().String())
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("workflow controller returned %d: %s", resp.StatusCode, string(data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) ScheduleSolver(ctx context.Context, solverName, packages string, indexes []string, transitive, debug bool) (string, error) {
	var resp analysisResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/solver", solverRequest{
		Solver:     solverName,
		Packages:   packages,
		Indexes:    indexes,
		Transitive: transitive,
		Debug:      debug,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AnalysisID, nil
}

func (c *Client) ScheduleAllSolvers(ctx context.Context, packages string, indexes []string) ([]string, error) {
	var resp analysesResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/solver/all", allSolversRequest{
		Packages: packages,
		Indexes:  indexes,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.AnalysisIDs, nil
}

func (c *Client) ScheduleRevSolver(ctx context.Context, packageName, packageVersion string, debug bool) (string, error) {
	var resp analysisResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/revsolver", revSolverRequest{
		PackageName:    packageName,
		PackageVersion: packageVersion,
		Debug:          debug,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AnalysisID, nil
}

func (c *Client) ScheduleSecurityIndicator(ctx context.Context, packageName, packageVersion, indexURL, aggregationFunction string) (string, error) {
	var resp analysisResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/security-indicator", securityIndicatorRequest{
		PackageName:         packageName,
		PackageVersion:      packageVersion,
		IndexURL:            indexURL,
		AggregationFunction: aggregationFunction,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AnalysisID, nil
}

func (c *Client) SolverNames(ctx context.Context) ([]string, error) {
	var resp solverNamesResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/solvers", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Solvers, nil
}
