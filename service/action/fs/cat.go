package fs

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/viant/pixelterm/model/response"
	"github.com/viant/pixelterm/model/types"
	"github.com/viant/pixelterm/service/sandbox"
)

// TruncationMarker is appended to truncated previews
const TruncationMarker = "\n... (content truncated)"

func (s *Service) cat(ctx context.Context, term types.Terminal, cmd *types.Command) *response.Response {
	token := pathArgument(cmd)
	if token == "" {
		return usage("cat", "<filename>")
	}
	location, resp := s.resolve(term, token)
	if resp != nil {
		return resp
	}
	asset, err := s.object(ctx, location)
	if err != nil {
		return failure(term, "reading file", token, err)
	}
	if asset == nil {
		return response.Errorf(response.KindNotFound, "File not found: %v", token)
	}
	if asset.IsDir {
		return response.Errorf(response.KindNotAFile, "Cannot read directory: %v", token)
	}
	if !asset.Mode.IsRegular() {
		return response.Errorf(response.KindNotAFile, "Cannot read special file: %v", token)
	}
	if kind, ok := s.media.Kind(asset.Name); ok {
		return response.Emit(kind, sandbox.Relative(term.Root(), location))
	}
	reader, err := s.fs.OpenURL(ctx, fileURL(location))
	if err != nil {
		return failure(term, "reading file", token, err)
	}
	defer reader.Close()
	text, ok, err := Preview(reader, s.previewLimit)
	if err != nil {
		return failure(term, "reading file", token, err)
	}
	if !ok {
		return response.Errorf(response.KindEncodingError, "Cannot display binary file: %v", token)
	}
	return response.Text(text)
}

// Preview reads at most limit runes of UTF-8 text, appending TruncationMarker
// when more content follows. It returns false for content that is not valid UTF-8.
func Preview(reader io.Reader, limit int) (string, bool, error) {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	maxBytes := int64(limit*utf8.UTFMax) + 1
	data, err := io.ReadAll(io.LimitReader(reader, maxBytes))
	if err != nil {
		return "", false, err
	}
	partial := int64(len(data)) == maxBytes
	if partial {
		data = trimPartialRune(data)
	}
	if !utf8.Valid(data) {
		return "", false, nil
	}
	if !partial && utf8.RuneCount(data) <= limit {
		return string(data), true, nil
	}
	runes := []rune(string(data))
	if len(runes) <= limit {
		return string(runes) + TruncationMarker, true, nil
	}
	return string(runes[:limit]) + TruncationMarker, true, nil
}

// trimPartialRune drops an incomplete trailing UTF-8 sequence cut by a read limit
func trimPartialRune(data []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(data); i++ {
		start := len(data) - i
		if utf8.RuneStart(data[start]) {
			if !utf8.FullRune(data[start:]) {
				return data[:start]
			}
			return data
		}
	}
	return data
}
