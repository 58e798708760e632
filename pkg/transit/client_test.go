package transit

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Query(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "secret", r.Header.Get("digitransit-subscription-key"))

		var req graphQLRequest
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Contains(t, req.Query, `stops(name: "E3158")`)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":{"stops":[]}}`))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL), WithAPIKey("secret"))

	body, err := client.Query(context.Background(), StopSearchQuery("E3158"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"stops":[]}}`, string(body))
}

func TestClient_Query_HTTPStatusError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream is down"))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL))

	_, err := client.Query(context.Background(), "{}")
	require.Error(t, err)

	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.NotContains(t, err.Error(), "upstream is down")
	assert.Equal(t, 1, attempts, "requests are never retried")
}

func TestClient_Query_TransportError(t *testing.T) {
	// grab a free port and close it again so nothing is listening
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	lis.Close()

	client := NewClient(WithEndpoint("http://" + addr + "/graphql"))

	_, err = client.Query(context.Background(), "{}")
	require.Error(t, err)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestClient_Query_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(WithEndpoint(server.URL), WithTimeout(50*time.Millisecond))

	_, err := client.Query(context.Background(), "{}")

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestClient_ResolveStop(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(stopSearchJSON))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL))

	stop, err := client.ResolveStop(context.Background(), "E3158")
	require.NoError(t, err)
	assert.Equal(t, "HSL:2222234", stop.ID)
	assert.Equal(t, "Tapiola (M)", stop.Name)
	assert.Equal(t, 2, stop.Routes.Len())
}

func TestClient_ResolveStop_NotFound(t *testing.T) {
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		queries = append(queries, string(body))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":{"stops":[]}}`))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL))

	_, err := client.ResolveStop(context.Background(), "X0000")

	var notFound *StopNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "X0000", notFound.Code)
	require.Len(t, queries, 1)
	assert.False(t, strings.Contains(queries[0], "stoptimesWithoutPatterns"), "no departures query may follow a failed search")
}

func TestClient_FetchDepartures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &req))
		assert.Contains(t, req.Query, `stop(id: "HSL:2222234")`)
		assert.Contains(t, req.Query, "numberOfDepartures: 8")

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(departuresJSON))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL))

	deps, err := client.FetchDepartures(context.Background(), "HSL:2222234", ParseOptions{ShowDelays: true, Limit: 8})
	require.NoError(t, err)
	require.Len(t, deps, 3)
	assert.Equal(t, "Airport via Center", deps[0].Headsign)
}

func TestClient_FetchDepartures_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	client := NewClient(WithEndpoint(server.URL))

	_, err := client.FetchDepartures(context.Background(), "HSL:1", ParseOptions{})

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}
