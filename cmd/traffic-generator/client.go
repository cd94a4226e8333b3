package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"tracking/internal/generated/dto"
)

var errUnexpectedStatus = errors.New("unexpected status")

type client struct {
	baseURL string
	http    *http.Client
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *client) bookCargo(ctx context.Context, req dto.BookCargoRequest) (string, error) {
	var resp dto.BookCargoResponse
	if err := c.do(ctx, http.MethodPost, "/cargo", req, http.StatusCreated, &resp); err != nil {
		return "", err
	}
	return resp.TrackingId, nil
}

func (c *client) candidateRoutes(ctx context.Context, id string) ([]dto.Itinerary, error) {
	var resp dto.CandidateRoutesResponse
	if err := c.do(ctx, http.MethodGet, "/cargo/"+id+"/routes", nil, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return resp.Routes, nil
}

func (c *client) assignItinerary(ctx context.Context, id string, it dto.Itinerary) error {
	return c.do(ctx, http.MethodPut, "/cargo/"+id+"/itinerary", it, http.StatusNoContent, nil)
}

func (c *client) registerEvent(ctx context.Context, report dto.HandlingReport) error {
	return c.do(ctx, http.MethodPost, "/handling-events", report, http.StatusCreated, nil)
}

func (c *client) cargo(ctx context.Context, id string) (dto.Cargo, error) {
	var resp dto.Cargo
	err := c.do(ctx, http.MethodGet, "/cargo/"+id, nil, http.StatusOK, &resp)
	return resp, err
}

func (c *client) do(ctx context.Context, method, path string, body any, expected int, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != expected {
		return fmt.Errorf("%w: %s %s: %d", errUnexpectedStatus, method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
