package nethys

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

const sampleResponse = `{
	"hits": {
		"hits": [
			{"_source": {
				"name": "Longsword",
				"type": "Weapon",
				"category": "weapon",
				"url": "Weapons.aspx?ID=29",
				"text": "Damage 1d8 slashing Bulk 1 Hands 1 Type Martial Group Sword",
				"level": 0,
				"price": 100,
				"source": ["Player Core", "Core Rulebook"],
				"rarity": "common",
				"trait_raw": ["versatile-p"]
			}}
		]
	}
}`

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		APIBase: server.URL,
		WebBase: "https://2e.aonprd.com/",
		Timeout: 2 * time.Second,
	}, &fakeClock{now: time.Unix(1000, 0)}, zerolog.Nop())
	return client, server, &calls
}

func TestSearchNormalizesRecords(t *testing.T) {
	client, _, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleResponse))
	})

	records, err := client.Search(context.Background(), "longsword", 5, "All")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}

	rec := records[0]
	if rec.Name != "Longsword" {
		t.Fatalf("name = %q", rec.Name)
	}
	if rec.URL != "https://2e.aonprd.com/Weapons.aspx?ID=29" {
		t.Fatalf("relative url not joined: %q", rec.URL)
	}
	if rec.Source != "Player Core" {
		t.Fatalf("source list not collapsed: %q", rec.Source)
	}
	if rec.Price != "1 gp" {
		t.Fatalf("copper price not formatted: %q", rec.Price)
	}
	if rec.Level == nil || *rec.Level != 0 {
		t.Fatalf("level not decoded: %#v", rec.Level)
	}
	if len(rec.Traits) != 1 || rec.Traits[0] != "versatile-p" {
		t.Fatalf("traits not carried: %#v", rec.Traits)
	}
}

func TestSearchBuildsWeightedQuery(t *testing.T) {
	var body map[string]any
	client, _, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(`{"hits":{"hits":[]}}`))
	})

	if _, err := client.Search(context.Background(), "Longsword", 5, "Equipment"); err != nil {
		t.Fatalf("search: %v", err)
	}

	raw, _ := json.Marshal(body)
	for _, fragment := range []string{
		`"name^3"`, `"text^2"`, `"trait_raw^2"`,
		`"*longsword*"`, `"minimum_should_match":1`,
		`"type.keyword":"Equipment"`, `"order":"desc"`, `"order":"asc"`,
	} {
		if !strings.Contains(string(raw), fragment) {
			t.Fatalf("request body missing %s: %s", fragment, raw)
		}
	}
	if body["size"].(float64) != 5 {
		t.Fatalf("size = %v", body["size"])
	}
}

func TestSearchAllSkipsCategoryFilter(t *testing.T) {
	var raw []byte
	client, _, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		raw, _ = json.Marshal(body)
		w.Write([]byte(`{"hits":{"hits":[]}}`))
	})

	if _, err := client.Search(context.Background(), "fireball", 5, "All"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if strings.Contains(string(raw), "filter") {
		t.Fatalf("the All sentinel must not add a filter: %s", raw)
	}
}

func TestSearchServedFromCacheOnRepeat(t *testing.T) {
	client, _, calls := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleResponse))
	})

	ctx := context.Background()
	if _, err := client.Search(ctx, "longsword", 5, "All"); err != nil {
		t.Fatalf("first search: %v", err)
	}
	records, err := client.Search(ctx, "longsword", 5, "All")
	if err != nil {
		t.Fatalf("second search: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one outbound call, got %d", calls.Load())
	}
	if len(records) != 1 || records[0].Name != "Longsword" {
		t.Fatalf("cached result mangled: %#v", records)
	}
}

func TestSearchDistinctKeysMissCache(t *testing.T) {
	client, _, calls := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hits":{"hits":[]}}`))
	})

	ctx := context.Background()
	client.Search(ctx, "longsword", 5, "All")
	client.Search(ctx, "longsword", 5, "Equipment")
	client.Search(ctx, "longsword", 3, "All")
	if calls.Load() != 3 {
		t.Fatalf("expected three outbound calls, got %d", calls.Load())
	}
}

func TestSearchErrorStatusIsNotCached(t *testing.T) {
	client, _, calls := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	ctx := context.Background()
	if _, err := client.Search(ctx, "longsword", 5, "All"); err == nil {
		t.Fatalf("expected an error for a 502 response")
	}
	if _, err := client.Search(ctx, "longsword", 5, "All"); err == nil {
		t.Fatalf("expected the failure not to be cached")
	}
	if calls.Load() != 2 {
		t.Fatalf("expected two outbound calls, got %d", calls.Load())
	}
}

func TestSearchMalformedJSON(t *testing.T) {
	client, _, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hits": nope`))
	})

	if _, err := client.Search(context.Background(), "longsword", 5, "All"); err == nil {
		t.Fatalf("expected a decode error")
	}
}

func TestSearchTimeoutIsNotCached(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(ClientConfig{
		APIBase: server.URL,
		Timeout: 50 * time.Millisecond,
	}, nil, zerolog.Nop())

	if _, err := client.Search(context.Background(), "slow", 5, "All"); err == nil {
		t.Fatalf("expected a timeout error")
	}
	if _, ok := client.cache.Get("slow:5:All"); ok {
		t.Fatalf("timed-out search must not populate the cache")
	}
}
