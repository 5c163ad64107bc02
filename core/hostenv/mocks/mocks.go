package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// IPLookup is a mock implementation of hostenv.IPLookup
type IPLookup struct {
	mock.Mock
}

func (m *IPLookup) MyIP(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Clock is a mock implementation of hostenv.Clock
type Clock struct {
	mock.Mock
}

func (m *Clock) Now() string {
	args := m.Called()
	return args.String(0)
}
