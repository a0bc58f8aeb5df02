package network

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/action/fs"
	"github.com/viant/pixelterm/service/parser"
)

const defaultScheme = "http://"

func (s *Service) curl(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	target := parser.Unquote(strings.TrimSpace(cmd.Argument))
	if target == "" {
		return response.Error(response.KindInvalidArgument, "Usage: curl <url>")
	}
	URL, err := normalizeURL(target)
	if err != nil {
		return response.Errorf(response.KindInvalidArgument, "Invalid URL: %v", err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return response.Errorf(response.KindInvalidArgument, "Invalid URL: %v", err)
	}
	request.Header.Set("User-Agent", "pixelterm-curl")
	resp, err := s.client.Do(request)
	if err != nil {
		return networkFailure("curl", target, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return networkFailure("curl", target, err)
	}
	status := fmt.Sprintf("HTTP %v", resp.Status)
	if len(data) == 0 {
		return response.Text(status)
	}
	body, ok, err := fs.Preview(bytes.NewReader(data), s.previewLimit)
	if err != nil || !ok {
		return response.Textf("%v\n[binary content, %d bytes]", status, len(data))
	}
	return response.Text(status + "\n" + body)
}

// normalizeURL defaults the scheme to http and accepts only http and https
func normalizeURL(target string) (string, error) {
	if !strings.Contains(target, "://") {
		target = defaultScheme + target
	}
	parsed, err := url.Parse(target)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
	default:
		return "", fmt.Errorf("unsupported scheme: %v", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("missing host: %v", target)
	}
	return parsed.String(), nil
}

func networkFailure(verb, target string, err error) *response.Response {
	if errors.Is(err, ErrPrivateAddress) {
		return response.Errorf(response.KindNetworkError, "%v: %v: access to private network addresses is not allowed", verb, target)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return response.Errorf(response.KindTimeout, "%v: %v: request timed out", verb, target)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	return response.Errorf(response.KindNetworkError, "%v: %v: %v", verb, target, err)
}
