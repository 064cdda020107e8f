package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// The classifier call has a hard 30s bound; the encyclopedia gets a
// tighter one since summaries are small.
const defaultTimeout = 15 * time.Second

// ErrNotFound means the encyclopedia has no article under the title.
var ErrNotFound = errors.New("page not found")

// AmbiguousError is returned for disambiguation pages; Options lists the
// candidate article titles, most relevant first.
type AmbiguousError struct {
	Title   string
	Options []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous title %q: %d options", e.Title, len(e.Options))
}

type Client struct {
	hc      *http.Client
	baseURL string // overrides the per-language endpoint when set
}

func NewClient() *Client {
	return &Client{
		hc: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) endpoint(lang string) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang)
}

// Summary fetches a plain-text extract of the article, limited to the
// given number of sentences. Disambiguation pages come back as
// *AmbiguousError, missing articles as ErrNotFound.
func (c *Client) Summary(ctx context.Context, title, lang string, sentences int) (string, error) {
	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"redirects":     {"1"},
		"titles":        {title},
		"prop":          {"extracts|pageprops|links"},
		"ppprop":        {"disambiguation"},
		"plnamespace":   {"0"},
		"pllimit":       {"10"},
		"explaintext":   {"1"},
		"exsentences":   {strconv.Itoa(sentences)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(lang)+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}

	respBody, err := c.doRequest(req)
	if err != nil {
		return "", err
	}

	var qr queryResponse
	if err := json.Unmarshal(respBody, &qr); err != nil {
		return "", fmt.Errorf("failed to parse query response: %w", err)
	}

	if len(qr.Query.Pages) == 0 {
		return "", ErrNotFound
	}

	p := qr.Query.Pages[0]
	if p.Missing {
		return "", ErrNotFound
	}

	if p.isDisambiguation() {
		options := make([]string, 0, len(p.Links))
		for _, l := range p.Links {
			options = append(options, l.Title)
		}
		return "", &AmbiguousError{Title: title, Options: options}
	}

	if p.Extract == "" {
		return "", ErrNotFound
	}
	return p.Extract, nil
}

func (c *Client) doRequest(req *http.Request) ([]byte, error) {
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, string(respBody))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return respBody, nil
}
