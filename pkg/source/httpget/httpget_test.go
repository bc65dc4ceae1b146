package httpget

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSONRetries5xx(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"status":"OK"}`)
	}))
	defer srv.Close()

	c := New(time.Second, 3, false)
	c.InitialInterval = time.Millisecond
	v := struct{ Status string }{}
	err := c.GetJSON(context.Background(), srv.URL, &v)
	require.NoError(t, err)
	assert.Equal(t, "OK", v.Status)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGetJSONNoRetryOn4xx(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(time.Second, 3, false)
	c.InitialInterval = time.Millisecond
	err := c.GetJSON(context.Background(), srv.URL+"/json.htm", &struct{}{})
	assert.EqualError(t, err, "error fetching /json.htm StatusCode: 401")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetJSONBasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, p, ok := r.BasicAuth()
		if !ok || u != "admin" || p != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c := New(time.Second, 0, false)
	c.SetBasicAuth("admin", "secret")
	assert.NoError(t, c.GetJSON(context.Background(), srv.URL, &struct{}{}))
}

func TestGetJSONInsecureTLS(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c := New(time.Second, 0, true)
	assert.NoError(t, c.GetJSON(context.Background(), srv.URL, &struct{}{}))

	c = New(time.Second, 0, false)
	assert.Error(t, c.GetJSON(context.Background(), srv.URL, &struct{}{}))
}
