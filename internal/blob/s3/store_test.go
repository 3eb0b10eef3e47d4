package s3

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enasubmit/internal/blob"
)

// fakeS3 answers PutObject for a path-style endpoint and remembers bodies.
type fakeS3 struct {
	mu    sync.Mutex
	puts  map[string][]byte
	types map[string]string
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodPut {
		return &http.Response{StatusCode: http.StatusNotImplemented, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{}}, nil
	}
	body, _ := io.ReadAll(req.Body)
	if strings.Contains(req.Header.Get("Content-Encoding"), "aws-chunked") || req.Header.Get("X-Amz-Decoded-Content-Length") != "" {
		body = decodeChunked(body)
	}
	f.mu.Lock()
	f.puts[strings.TrimPrefix(req.URL.Path, "/")] = body
	f.types[strings.TrimPrefix(req.URL.Path, "/")] = req.Header.Get("Content-Type")
	f.mu.Unlock()
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(nil)), Header: http.Header{"Etag": {`"etag"`}}}, nil
}

// decodeChunked strips aws-chunked framing: <hex>[;ext]\r\n<data>\r\n ... 0\r\n
func decodeChunked(b []byte) []byte {
	var out []byte
	r := bufio.NewReader(bytes.NewReader(b))
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return out
		}
		size, _, _ := strings.Cut(strings.TrimSpace(line), ";")
		n, err := strconv.ParseInt(size, 16, 64)
		if err != nil || n == 0 {
			return out
		}
		chunk := make([]byte, n)
		if _, err := io.ReadFull(r, chunk); err != nil {
			return out
		}
		out = append(out, chunk...)
		_, _ = r.ReadString('\n')
	}
}

func newFake(t *testing.T) (*Store, *fakeS3) {
	t.Helper()
	fake := &fakeS3{puts: map[string][]byte{}, types: map[string]string{}}
	st, err := New(context.Background(), Config{
		Bucket:          "submissions",
		Prefix:          "batch7",
		Region:          "eu-west-2",
		Endpoint:        "https://s3.test.local",
		PathStyle:       true,
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
		HTTPClient:      &http.Client{Transport: fake},
	})
	require.NoError(t, err)
	return st, fake
}

func TestPut(t *testing.T) {
	st, fake := newFake(t)
	doc := "<RUN_SET>\n</RUN_SET>\n"

	info, err := st.Put(context.Background(), "runs.xml", strings.NewReader(doc), blob.PutOptions{ContentType: "application/xml"})
	require.NoError(t, err)
	assert.Equal(t, "s3://submissions/batch7/runs.xml", info.Location)
	assert.Equal(t, int64(len(doc)), info.Size)
	assert.Equal(t, blob.DriverS3, st.Driver())

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, doc, string(fake.puts["submissions/batch7/runs.xml"]))
	assert.Equal(t, "application/xml", fake.types["submissions/batch7/runs.xml"])
}

func TestNewRequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{})
	require.Error(t, err)
}
