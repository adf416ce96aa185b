package vacefron

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Image is a generated image on the API side. It only holds the validated
// URL; every Read, Stream or Save fetches the image again.
type Image struct {
	url     string
	session *Session
}

// URL returns the validated image URL.
func (i Image) URL() string {
	return i.url
}

func (i Image) String() string {
	return i.url
}

// Read fetches the image and returns its bytes.
func (i Image) Read(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := i.Stream(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Stream fetches the image and copies the body to w.
func (i Image) Stream(ctx context.Context, w io.Writer) (int64, error) {
	resp, err := i.open(ctx)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("failed to read image data: %w", err)
	}
	return n, nil
}

// Save fetches the image and writes it to path. The file is only created
// once the API has answered with 200, and it is closed on every path.
func (i Image) Save(ctx context.Context, path string) (err error) {
	resp, err := i.open(ctx)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close image file: %w", cerr)
		}
	}()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}

// open issues the GET and returns the response once it is known to be a
// 200. Any other status goes through the same classification as the
// endpoint call did.
func (i Image) open(ctx context.Context) (*http.Response, error) {
	if i.session == nil {
		return nil, ErrEmptyImage
	}
	resp, err := i.session.get(ctx, i.url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_, err := classify(i.url, resp)
		return nil, err
	}
	return resp, nil
}
