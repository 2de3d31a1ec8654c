package articles

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newsServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "vegan OR gluten OR vegetarian", r.URL.Query().Get("q"))
		assert.Equal(t, "title", r.URL.Query().Get("searchIn"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

type mapCache map[string][]Article

func (c mapCache) GetJSON(_ context.Context, key string, dst any) bool {
	v, ok := c[key]
	if ok {
		*dst.(*[]Article) = v
	}
	return ok
}

func (c mapCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) {
	c[key] = v.([]Article)
}

func TestLatestRelaysArticlesAndCaches(t *testing.T) {
	srv, hits := newsServer(t, http.StatusOK, `{"status":"ok","articles":[{"title":"Vegan bowls","source":{"name":"Daily"}}]}`)
	c := NewClient(Config{APIKey: "key", URL: srv.URL}, mapCache{}, zap.NewNop())

	got := c.Latest(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "Vegan bowls", got[0].Title)
	assert.Equal(t, "Daily", got[0].Source.Name)

	c.Latest(context.Background())
	assert.EqualValues(t, 1, hits.Load())
}

func TestLatestDegradesToEmpty(t *testing.T) {
	srv, _ := newsServer(t, http.StatusUnauthorized, `{"status":"error","code":"apiKeyInvalid","message":"bad key"}`)
	c := NewClient(Config{APIKey: "key", URL: srv.URL}, nil, nil)

	got := c.Latest(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBreakerOpensAfterFailures(t *testing.T) {
	srv, hits := newsServer(t, http.StatusInternalServerError, `not json`)
	c := NewClient(Config{APIKey: "key", URL: srv.URL, FailureThreshold: 2, OpenTimeout: time.Minute}, nil, nil)

	for i := 0; i < 5; i++ {
		assert.Empty(t, c.Latest(context.Background()))
	}
	assert.EqualValues(t, 2, hits.Load(), "open breaker short-circuits upstream calls")
}

func TestNoKeySkipsUpstream(t *testing.T) {
	srv, hits := newsServer(t, http.StatusOK, `{"status":"ok","articles":[]}`)
	c := NewClient(Config{URL: srv.URL}, nil, nil)

	assert.Empty(t, c.Latest(context.Background()))
	assert.Zero(t, hits.Load())
}

func TestListRoute(t *testing.T) {
	srv, _ := newsServer(t, http.StatusOK, `{"status":"ok","articles":[{"title":"Gluten free"}]}`)
	h := NewHandler(NewClient(Config{APIKey: "key", URL: srv.URL}, nil, nil))
	router := httprouter.New()
	router.GET("/articles", h.List)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))
	var body map[string][]Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body["articles"], 1)
	assert.Equal(t, "Gluten free", body["articles"][0].Title)
}
