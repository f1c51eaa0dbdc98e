package exportsink

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_Put(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	s := NewFileSink(dir)

	loc, err := s.Put(context.Background(), "assessments_2026.csv", "text/csv", []byte("id\n"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "assessments_2026.csv"), loc)

	b, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "id\n", string(b))
}

func TestFileSink_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFileSink(t.TempDir()).Put(ctx, "x.csv", "", nil)
	require.ErrorIs(t, err, context.Canceled)
}

func stubS3(t *testing.T) (*s3.Options, *[]*s3.PutObjectInput) {
	t.Helper()
	origLoad, origNew, origPut := loadDefaultAWSConfig, newS3ClientFromConfig, putObject
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig, putObject = origLoad, origNew, origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		return aws.Config{Region: lo.Region}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		opts.Region = cfg.Region
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	var puts []*s3.PutObjectInput
	putObject = func(_ *s3.Client, _ context.Context, in *s3.PutObjectInput) error {
		puts = append(puts, in)
		return nil
	}
	return &opts, &puts
}

func TestS3Sink_PutUsesBucketPrefixAndEndpoint(t *testing.T) {
	opts, puts := stubS3(t)

	s, err := NewS3Sink(context.Background(), S3Config{
		Endpoint:  "http://127.0.0.1:9000",
		Region:    "us-east-1",
		Bucket:    "exports",
		AccessKey: "minio",
		SecretKey: "minio123",
		Prefix:    "program-p1",
	})
	require.NoError(t, err)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "us-east-1", opts.Region)

	loc, err := s.Put(context.Background(), "../grid.csv", "text/csv", []byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, "s3://exports/program-p1/grid.csv", loc)

	require.Len(t, *puts, 1)
	in := (*puts)[0]
	assert.Equal(t, "exports", aws.ToString(in.Bucket))
	assert.Equal(t, "program-p1/grid.csv", aws.ToString(in.Key))
	assert.Equal(t, "text/csv", aws.ToString(in.ContentType))
	assert.Equal(t, int64(4), aws.ToInt64(in.ContentLength))
	body, err := io.ReadAll(in.Body)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(body))
}

func TestS3Sink_NoEndpointKeepsVirtualHosting(t *testing.T) {
	opts, _ := stubS3(t)
	_, err := NewS3Sink(context.Background(), S3Config{Region: "eu-west-1", Bucket: "b"})
	require.NoError(t, err)
	assert.Nil(t, opts.BaseEndpoint)
	assert.False(t, opts.UsePathStyle)
}

func TestS3Sink_Errors(t *testing.T) {
	_, err := NewS3Sink(context.Background(), S3Config{})
	require.Error(t, err)

	stubS3(t)
	loadDefaultAWSConfig = func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = NewS3Sink(context.Background(), S3Config{Bucket: "b"})
	require.ErrorContains(t, err, "load-fail")

	stubS3(t)
	s, err := NewS3Sink(context.Background(), S3Config{Bucket: "b"})
	require.NoError(t, err)
	putObject = func(*s3.Client, context.Context, *s3.PutObjectInput) error { return errors.New("denied") }
	_, err = s.Put(context.Background(), "x.csv", "", nil)
	require.ErrorContains(t, err, "denied")

	_, err = s.Put(context.Background(), "", "", nil)
	require.Error(t, err)
}
