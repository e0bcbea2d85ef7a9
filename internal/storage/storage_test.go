package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/set-night/chatbotui/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R', 0, 0, 0, 1, 0, 0, 0, 1}

func TestDataURLRoundTrip(t *testing.T) {
	encoded := EncodeDataURL(pngHeader)
	assert.True(t, strings.HasPrefix(encoded, "data:image/png;base64,"))

	decoded, mediaType, err := DecodeDataURL(encoded)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mediaType)
	assert.Equal(t, pngHeader, decoded)
}

func TestDecodeDataURLInvalid(t *testing.T) {
	for _, in := range []string{"", "image/png;base64,AAAA", "data:image/png,AAAA", "data:image/png;base64,***"} {
		_, _, err := DecodeDataURL(in)
		assert.ErrorIs(t, err, domain.ErrInvalidDataURL, in)
	}
}

func TestDownloader(t *testing.T) {
	t.Run("returns body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(pngHeader)
		}))
		defer srv.Close()

		data, err := NewDownloader(0, time.Millisecond, time.Millisecond).Download(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, pngHeader, data)
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write(pngHeader)
		}))
		defer srv.Close()

		data, err := NewDownloader(3, time.Millisecond, 5*time.Millisecond).Download(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, pngHeader, data)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("fails on not found", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		_, err := NewDownloader(2, time.Millisecond, time.Millisecond).Download(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 404")
	})
}

func newTestImages(t *testing.T, handler http.HandlerFunc) *Images {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		UsePathStyle: true,
		Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{AccessKeyID: "test", SecretAccessKey: "test"}, nil
		}),
	})
	return NewImages(client, "assistant_images", time.Hour, NewDownloader(0, time.Millisecond, time.Millisecond))
}

func TestImagesResolveURL(t *testing.T) {
	t.Run("presigns existing object", func(t *testing.T) {
		images := newTestImages(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodHead, r.Method)
			assert.Equal(t, "/assistant_images/user/a.png", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		})

		url, err := images.ResolveURL(context.Background(), "user/a.png")
		require.NoError(t, err)
		assert.Contains(t, url, "/assistant_images/user/a.png")
		assert.Contains(t, url, "X-Amz-Signature=")
		assert.Contains(t, url, "X-Amz-Expires=3600")
	})

	t.Run("missing object resolves to empty url", func(t *testing.T) {
		images := newTestImages(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		url, err := images.ResolveURL(context.Background(), "user/missing.png")
		require.NoError(t, err)
		assert.Empty(t, url)
	})
}

func TestImagesEncode(t *testing.T) {
	images := &Images{}

	empty, err := images.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "data:application/octet-stream;base64,", empty)
	data, mediaType, err := DecodeDataURL(empty)
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Equal(t, "application/octet-stream", mediaType)

	encoded, err := images.Encode(pngHeader)
	require.NoError(t, err)
	assert.Equal(t, EncodeDataURL(pngHeader), encoded)
}
