package telnyx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		client, err := New("")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
		assert.Nil(t, client)
	})

	t.Run("defaults", func(t *testing.T) {
		client, err := New("test-api-key")
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
		assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	})

	t.Run("with base URL", func(t *testing.T) {
		client, err := New("test-api-key", WithBaseURL("http://localhost:8080/"))
		require.NoError(t, err)
		// Trailing slash is stripped so paths concatenate cleanly
		assert.Equal(t, "http://localhost:8080", client.BaseURL())
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := New("test-api-key", WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := New("test-api-key", WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with logger", func(t *testing.T) {
		client, err := New("test-api-key", WithLogger(zerolog.Nop()))
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

type widget struct {
	Name string `json:"name"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New("test-api-key", WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestGet(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/widgets/1", r.URL.Path)
			assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			json.NewEncoder(w).Encode(widget{Name: "sprocket"})
		})

		got, err := Get[widget](context.Background(), client, "/widgets/1")
		require.NoError(t, err)
		assert.Equal(t, "sprocket", got.Name)
	})

	t.Run("API error carries status and body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("no such widget"))
		})

		got, err := Get[widget](context.Background(), client, "/widgets/1")
		require.Error(t, err)
		assert.Nil(t, got)

		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "no such widget", apiErr.Body)
		assert.True(t, apiErr.IsNotFound())
	})

	t.Run("API error with empty body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := Get[widget](context.Background(), client, "/widgets/1")
		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, 401, apiErr.StatusCode)
		assert.Empty(t, apiErr.Body)
		assert.True(t, apiErr.IsUnauthorized())
	})

	t.Run("parse error on malformed body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json at all"))
		})

		got, err := Get[widget](context.Background(), client, "/widgets/1")
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, IsParseError(err))
		// Parse failures must not be reported as API errors
		_, ok := AsAPIError(err)
		assert.False(t, ok)
	})

	t.Run("transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		client, err := New("test-api-key", WithBaseURL(server.URL))
		require.NoError(t, err)
		server.Close()

		_, err = Get[widget](context.Background(), client, "/widgets/1")
		require.Error(t, err)
		assert.True(t, IsTransportError(err))
	})
}

func TestPost(t *testing.T) {
	t.Run("sends JSON body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body widget
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "cog", body.Name)

			json.NewEncoder(w).Encode(widget{Name: "cog"})
		})

		got, err := Post[widget](context.Background(), client, "/widgets", widget{Name: "cog"})
		require.NoError(t, err)
		assert.Equal(t, "cog", got.Name)
	})

	t.Run("unprocessable entity", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"errors":[{"code":"10015"}]}`))
		})

		_, err := Post[widget](context.Background(), client, "/widgets", widget{})
		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, 422, apiErr.StatusCode)
	})
}

func TestPutAndPatch(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, method, r.Method)
				json.NewEncoder(w).Encode(widget{Name: "updated"})
			})

			var got *widget
			var err error
			if method == http.MethodPut {
				got, err = Put[widget](context.Background(), client, "/widgets/1", widget{Name: "updated"})
			} else {
				got, err = Patch[widget](context.Background(), client, "/widgets/1", widget{Name: "updated"})
			}
			require.NoError(t, err)
			assert.Equal(t, "updated", got.Name)
		})
	}
}

func TestDelete(t *testing.T) {
	t.Run("success returns no payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		})

		err := Delete(context.Background(), client, "/widgets/1")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		err := Delete(context.Background(), client, "/widgets/1")
		apiErr, ok := AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, 404, apiErr.StatusCode)
	})
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Get[widget](ctx, client, "/widgets/1")
	require.Error(t, err)
	assert.True(t, IsTransportError(err))
}
