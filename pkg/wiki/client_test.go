package wiki

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return &Client{
		hc:      &http.Client{Timeout: time.Second},
		baseURL: baseURL,
	}
}

func respond(t *testing.T, w http.ResponseWriter, pages []page) {
	t.Helper()
	var qr queryResponse
	qr.Query.Pages = pages
	require.NoError(t, json.NewEncoder(w).Encode(qr))
}

func TestSummary(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"titles":      r.URL.Query().Get("titles"),
			"exsentences": r.URL.Query().Get("exsentences"),
			"explaintext": r.URL.Query().Get("explaintext"),
		}
		respond(t, w, []page{{Title: "Dog", Extract: "The dog is a domesticated descendant of the wolf."}})
	}))
	defer server.Close()

	summary, err := testClient(server.URL).Summary(context.Background(), "dog", "en", 3)
	require.NoError(t, err)

	assert.Equal(t, "The dog is a domesticated descendant of the wolf.", summary)
	assert.Equal(t, "dog", gotQuery["titles"])
	assert.Equal(t, "3", gotQuery["exsentences"])
	assert.Equal(t, "1", gotQuery["explaintext"])
}

func TestSummary_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respond(t, w, []page{{Title: "Nonexistent", Missing: true}})
	}))
	defer server.Close()

	_, err := testClient(server.URL).Summary(context.Background(), "nonexistent", "en", 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSummary_EmptyExtractIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respond(t, w, []page{{Title: "Stub"}})
	}))
	defer server.Close()

	_, err := testClient(server.URL).Summary(context.Background(), "stub", "en", 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSummary_Disambiguation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respond(t, w, []page{{
			Title:     "Mercury",
			PageProps: map[string]any{"disambiguation": ""},
			Links: []pageLink{
				{Title: "Mercury (planet)"},
				{Title: "Mercury (element)"},
			},
		}})
	}))
	defer server.Close()

	_, err := testClient(server.URL).Summary(context.Background(), "mercury", "en", 3)

	var ambErr *AmbiguousError
	require.ErrorAs(t, err, &ambErr)
	assert.Equal(t, "mercury", ambErr.Title)
	assert.Equal(t, []string{"Mercury (planet)", "Mercury (element)"}, ambErr.Options)
}

func TestSummary_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Summary(context.Background(), "dog", "en", 3)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSummary_NoPages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respond(t, w, nil)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Summary(context.Background(), "dog", "en", 3)
	assert.ErrorIs(t, err, ErrNotFound)
}
