package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	transporthttp "github.com/gabapcia/walletsync/internal/pkg/transport/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(time.Second),
		transporthttp.WithRetryMax(2),
		transporthttp.WithRetryWaitMin(time.Millisecond),
		transporthttp.WithRetryWaitMax(2*time.Millisecond),
	).StandardClient()

	return NewClient(httpClient, srv.URL, opts...), srv
}

func TestRequest_IsMutation(t *testing.T) {
	assert.True(t, Request{Query: "\n  mutation Login($input: LoginInput!) { login(input: $input) { id } }"}.IsMutation())
	assert.False(t, Request{Query: "query GetMe { me { id } }"}.IsMutation())
}

func TestClient_Do(t *testing.T) {
	t.Run("decodes data and sends the expected envelope", func(t *testing.T) {
		var received Request
		var headers http.Header

		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			headers = r.Header.Clone()
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"me": map[string]any{"id": "u1"}},
			})
		}, WithTokenSource(func(context.Context) (string, error) { return "tok", nil }))

		var out struct {
			Me struct {
				ID string `json:"id"`
			} `json:"me"`
		}

		err := c.Do(t.Context(), Request{
			Query:         "query GetMe { me { id } }",
			OperationName: "GetMe",
			Variables:     map[string]any{"page": 1},
		}, &out)

		require.NoError(t, err)
		assert.Equal(t, "u1", out.Me.ID)
		assert.Equal(t, "GetMe", received.OperationName)
		assert.Equal(t, float64(1), received.Variables["page"])
		assert.Equal(t, "Bearer tok", headers.Get("Authorization"))
		assert.Equal(t, "no-cache", headers.Get("Cache-Control"))
		assert.NotEmpty(t, headers.Get("X-Request-ID"))
	})

	t.Run("omits the authorization header without a token", func(t *testing.T) {
		var auth string
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			w.Write([]byte(`{"data":{}}`))
		}, WithTokenSource(func(context.Context) (string, error) { return "", nil }))

		require.NoError(t, c.Do(t.Context(), Request{Query: "query A { a }"}, nil))
		assert.Empty(t, auth)
	})

	t.Run("returns token source errors without sending", func(t *testing.T) {
		var calls atomic.Int32
		expected := errors.New("no session")
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}, WithTokenSource(func(context.Context) (string, error) { return "", expected }))

		err := c.Do(t.Context(), Request{Query: "query A { a }"}, nil)
		assert.ErrorIs(t, err, expected)
		assert.Zero(t, calls.Load())
	})

	t.Run("returns a response error with codes", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":null,"errors":[{"message":"No wallet found for user","extensions":{"code":"WALLET_NOT_FOUND"}}]}`))
		})

		err := c.Do(t.Context(), Request{Query: "query GetWalletBalance { getWalletBalance { address } }", OperationName: "GetWalletBalance"}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRemote)
		assert.Equal(t, "No wallet found for user", err.Error())

		respErr, ok := AsResponseError(err)
		require.True(t, ok)
		assert.Equal(t, "GetWalletBalance", respErr.Operation)
		assert.True(t, respErr.HasCode("WALLET_NOT_FOUND"))
		assert.True(t, respErr.MessageContains("No wallet found"))
	})

	t.Run("maps 401 to ErrUnauthorized", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		err := c.Do(t.Context(), Request{Query: "query A { a }"}, nil)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("keeps server messages on 401", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errors":[{"message":"jwt expired"}]}`))
		})

		err := c.Do(t.Context(), Request{Query: "query A { a }"}, nil)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.ErrorIs(t, err, ErrRemote)
		assert.Contains(t, err.Error(), "jwt expired")
	})

	t.Run("maps non-graphql failures to ErrUnexpectedStatus", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>"))
		})

		err := c.Do(t.Context(), Request{Query: "query A { a }"}, nil)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("reports malformed JSON on success status", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not json"))
		})

		err := c.Do(t.Context(), Request{Query: "query A { a }"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid character")
	})

	t.Run("retries queries but sends mutations once", func(t *testing.T) {
		var calls atomic.Int32
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		err := c.Do(t.Context(), Request{Query: "query A { a }"}, nil)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Equal(t, int32(3), calls.Load())

		calls.Store(0)
		err = c.Do(t.Context(), Request{Query: "mutation TransferFunds { transferFunds { hash } }"}, nil)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("does not send cache-control on mutations", func(t *testing.T) {
		var cacheControl string
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			cacheControl = r.Header.Get("Cache-Control")
			w.Write([]byte(`{"data":{"transferFunds":{"hash":"0x1"}}}`))
		})

		require.NoError(t, c.Do(t.Context(), Request{Query: "mutation M { m }"}, nil))
		assert.Empty(t, cacheControl)
	})

	t.Run("network error when server is down", func(t *testing.T) {
		c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		srv.Close()

		err := c.Do(t.Context(), Request{Query: "query A { a }"}, nil)
		assert.Error(t, err)
	})
}
