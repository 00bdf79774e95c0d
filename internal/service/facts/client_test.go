package facts

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/felipe/profileapi/internal/config"
	"github.com/felipe/profileapi/internal/logger"
)

const testFallback = "Cats are wonderful creatures!"

func newTestClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()

	logger.InitSimple("error")

	provider := httptest.NewServer(handler)
	t.Cleanup(provider.Close)

	return NewClient(config.CatFactConfig{
		URL:      provider.URL,
		Timeout:  timeout,
		Fallback: testFallback,
	})
}

func TestClient_RandomFact_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"fact":"Cats sleep 70% of their lives.","length":30}`))
	}, 2*time.Second)

	fact := client.RandomFact(context.Background())
	assert.Equal(t, "Cats sleep 70% of their lives.", fact)
}

func TestClient_RandomFact_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, 2*time.Second)

	fact := client.RandomFact(context.Background())
	assert.Equal(t, testFallback, fact)
}

func TestClient_RandomFact_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fact":"too late","length":8}`))
	}, 50*time.Millisecond)

	start := time.Now()
	fact := client.RandomFact(context.Background())

	assert.Equal(t, testFallback, fact)
	assert.Less(t, time.Since(start), 250*time.Millisecond, "must give up at the configured timeout")
}

func TestClient_RandomFact_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`this is not json`))
	}, 2*time.Second)

	fact := client.RandomFact(context.Background())
	assert.Equal(t, testFallback, fact)
}

func TestClient_RandomFact_MissingFactField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"length":42}`))
	}, 2*time.Second)

	fact := client.RandomFact(context.Background())
	assert.Equal(t, testFallback, fact)
}

func TestClient_RandomFact_ConnectionRefused(t *testing.T) {
	logger.InitSimple("error")

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	provider.Close()

	client := NewClient(config.CatFactConfig{
		URL:      provider.URL,
		Timeout:  time.Second,
		Fallback: testFallback,
	})

	fact := client.RandomFact(context.Background())
	assert.Equal(t, testFallback, fact)
}

func TestClient_RandomFact_NoMemoization(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"fact":"fact number %d","length":13}`, calls)
	}, 2*time.Second)

	first := client.RandomFact(context.Background())
	second := client.RandomFact(context.Background())

	assert.Equal(t, "fact number 1", first)
	assert.Equal(t, "fact number 2", second)
	assert.Equal(t, 2, calls, "each call must hit the provider")
}
