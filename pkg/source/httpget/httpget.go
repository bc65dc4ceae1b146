package httpget

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

type Client struct {
	client   *http.Client
	retries  int
	username string
	password string

	// InitialInterval is the first retry delay.
	InitialInterval time.Duration
}

func New(timeout time.Duration, retries int, insecure bool) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 self signed home servers
	}
	return &Client{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		retries:         retries,
		InitialInterval: 500 * time.Millisecond,
	}
}

func (c *Client) SetBasicAuth(username, password string) {
	c.username = username
	c.password = password
}

// GetJSON fetches u and decodes the body into v. Transport errors and 5xx
// responses are retried, anything else non 200 is returned at once.
func (c *Client) GetJSON(ctx context.Context, u string, v interface{}) error {
	var b backoff.BackOff
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.InitialInterval
	b = exp
	if c.retries >= 0 {
		b = backoff.WithMaxRetries(b, uint64(c.retries))
	}
	b = backoff.WithContext(b, ctx)

	return backoff.Retry(func() error {
		err := c.get(ctx, u, v)
		if err != nil {
			logrus.WithFields(logrus.Fields{"url": u}).Debugf("httpget: %s", err)
		}
		return err
	}, b)
}

func (c *Client) get(ctx context.Context, u string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("error fetching %s StatusCode: %d", req.URL.Path, resp.StatusCode)
	}
	if resp.StatusCode != 200 {
		return backoff.Permanent(fmt.Errorf("error fetching %s StatusCode: %d", req.URL.Path, resp.StatusCode))
	}

	err = json.NewDecoder(resp.Body).Decode(v)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("error decoding %s: %w", req.URL.Path, err))
	}
	return nil
}
