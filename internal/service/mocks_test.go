package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockPersonRegistry mocks store.PersonRegistry
type MockPersonRegistry struct {
	mock.Mock
}

func (m *MockPersonRegistry) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockPasswordHasher mocks auth.PasswordHasher
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

// MockImageStore mocks store.ImageStore and drains what it is given
type MockImageStore struct {
	mock.Mock
	saved []byte
}

func (m *MockImageStore) Save(ctx context.Context, name string, src io.Reader) (int64, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return 0, err
	}
	m.saved = data
	args := m.Called(ctx, name)
	return int64(len(data)), args.Error(0)
}

// MockUploadObserver mocks UploadObserver
type MockUploadObserver struct {
	mock.Mock
}

func (m *MockUploadObserver) ObserveUpload(bytes int64) {
	m.Called(bytes)
}
