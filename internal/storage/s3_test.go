package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mskn-backend/internal/config"
)

type fakeS3 struct {
	puts    map[string]string
	deleted []string
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	if f.puts == nil {
		f.puts = map[string]string{}
	}
	f.puts[aws.ToString(in.Key)] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestPutAndDelete(t *testing.T) {
	fake := &fakeS3{}
	store := newS3Store(fake, "docs", "https://cdn.example.com/")
	ctx := context.Background()

	url, err := store.Put(ctx, "documents/1-lease.pdf", "application/pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/documents/1-lease.pdf", url)
	assert.Equal(t, "pdf-bytes", fake.puts["documents/1-lease.pdf"])

	require.NoError(t, store.Delete(ctx, url))
	assert.Equal(t, []string{"documents/1-lease.pdf"}, fake.deleted)

	require.NoError(t, store.Delete(ctx, "/uploads/1-elsewhere.pdf"))
	assert.Len(t, fake.deleted, 1)
}

func TestObjectKeyAndPlaceholder(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "documents/1700000000123-my_lease.pdf", ObjectKey("../x/my lease.pdf", at))
	assert.Equal(t, "/uploads/1700000000123-lease.pdf", PlaceholderURL("lease.pdf", at))
}

func TestNoBucketMeansNoStore(t *testing.T) {
	store, err := NewS3Store(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.Nil(t, store)
}
