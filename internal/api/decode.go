package api

import (
	"context"
	"encoding/json"
)

// decodeList parses a list payload. The API is inconsistent about
// envelopes: some endpoints return a bare array, others wrap it as
// {"items": [...]} or {"data": [...]}. Anything else is a DecodeError.
func decodeList[T any](path string, raw []byte) ([]T, error) {
	var bare []T
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Items json.RawMessage `json:"items"`
		Data  json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, &DecodeError{Path: path, Reason: err.Error()}
	}

	inner := wrapped.Items
	if inner == nil {
		inner = wrapped.Data
	}
	if inner == nil {
		return nil, &DecodeError{Path: path, Reason: "no list found in response"}
	}

	var items []T
	if err := json.Unmarshal(inner, &items); err != nil {
		return nil, &DecodeError{Path: path, Reason: err.Error()}
	}
	return items, nil
}

// getList issues a GET and decodes the enveloped or bare list response.
func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	raw, err := c.do(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](path, raw)
}
