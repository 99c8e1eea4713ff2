package postal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1234567", Normalize("123-4567"))
	assert.Equal(t, "1234567", Normalize(" 123 4567 "))
	assert.Equal(t, "123", Normalize("123"))
	assert.Equal(t, "", Normalize("abc"))
}

func TestIsComplete(t *testing.T) {
	assert.True(t, IsComplete("123-4567"))
	assert.True(t, IsComplete("1234567"))
	assert.False(t, IsComplete("123456"))
	assert.False(t, IsComplete(""))
}

func testResolver(url string) *Resolver {
	return &Resolver{BaseURL: url, Client: &http.Client{Timeout: time.Second}}
}

func TestLookupSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1600022", r.URL.Query().Get("zipcode"))
		w.Write([]byte(`{"status":200,"results":[{"address1":"東京都","address2":"新宿区","address3":"新宿"}]}`))
	}))
	defer srv.Close()

	addr, err := testResolver(srv.URL).Lookup(context.Background(), "160-0022")
	require.NoError(t, err)
	assert.Equal(t, "東京都", addr.Prefecture)
	assert.Equal(t, "新宿区", addr.City)
	assert.Equal(t, "新宿", addr.Town)
}

func TestLookupNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":200,"results":null}`))
	}))
	defer srv.Close()

	_, err := testResolver(srv.URL).Lookup(context.Background(), "0000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testResolver(srv.URL).Lookup(context.Background(), "1600022")
	assert.Error(t, err)
}

func TestLookupRejectsShortCode(t *testing.T) {
	_, err := testResolver("http://unused").Lookup(context.Background(), "123")
	assert.Error(t, err)
}
