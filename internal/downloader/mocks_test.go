package downloader

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Validate(rawURL string) bool {
	args := m.Called(rawURL)
	return args.Bool(0)
}

func (m *MockProvider) FetchMetadata(ctx context.Context, rawURL string) (*Metadata, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Metadata), args.Error(1)
}

func (m *MockProvider) FetchFormats(ctx context.Context, rawURL string) ([]Format, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Format), args.Error(1)
}

func (m *MockProvider) OpenStream(ctx context.Context, rawURL string, f Format) (io.ReadCloser, int64, error) {
	args := m.Called(ctx, rawURL, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(int64), args.Error(2)
}
