package github

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"testing"

	"github.com/gnomegl/productive-box/internal/display"
)

// fakeQuerier answers queries from a handler returning raw data JSON.
type fakeQuerier struct {
	calls  []Request
	handle func(req Request) (string, *Response, error)
}

func (f *fakeQuerier) Execute(ctx context.Context, req Request, out interface{}) (*Response, error) {
	f.calls = append(f.calls, req)
	data, resp, err := f.handle(req)
	if resp == nil {
		resp = &Response{}
	}
	if err != nil {
		return resp, err
	}
	if data != "" && out != nil {
		if err := json.Unmarshal([]byte(data), out); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

func quietConsole() *display.Console {
	return display.NewConsoleWriters(io.Discard, io.Discard)
}

func mustParseURL(t *testing.T, rawURL string) *url.URL {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("failed to parse URL %q: %v", rawURL, err)
	}
	return u
}
