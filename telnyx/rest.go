package telnyx

import (
	"context"
	"encoding/json"
	"net/http"
)

// Get performs a GET request and decodes the JSON response into T.
func Get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	raw, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// Post performs a POST request with a JSON body and decodes the response into T.
func Post[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	raw, err := c.doRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// Put performs a PUT request with a JSON body and decodes the response into T.
func Put[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	raw, err := c.doRequest(ctx, http.MethodPut, path, body)
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// Patch performs a PATCH request with a JSON body and decodes the response into T.
func Patch[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	raw, err := c.doRequest(ctx, http.MethodPatch, path, body)
	if err != nil {
		return nil, err
	}
	return decode[T](raw)
}

// Delete performs a DELETE request. Successful deletes return no payload, so
// the response body is discarded.
func Delete(ctx context.Context, c *Client, path string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, path, nil)
	return err
}

func decode[T any](raw []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &out, nil
}
