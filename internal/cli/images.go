package cli

import (
	"context"
	"fmt"
	"os"
)

// fileImageSource satisfies the session's ImageSource port by reading a
// photo from a path armed just before the request. An empty path behaves
// like the user cancelling the picker sheet.
type fileImageSource struct {
	path string
}

func (f *fileImageSource) Request(ctx context.Context) ([]byte, error) {
	if f.path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read image file: %w", err)
	}
	return data, nil
}
