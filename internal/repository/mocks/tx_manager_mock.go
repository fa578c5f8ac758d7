package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockTxManager is a mock type for the TxManager type
type MockTxManager struct {
	mock.Mock
}

// WithinTx provides a mock function with given fields: ctx, fn
//
// Jika expectation mengembalikan nil, fn dijalankan dengan tx nil (repo di test
// adalah mock sehingga tx tidak dipakai) dan error fn diteruskan ke pemanggil.
func (_m *MockTxManager) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(pgx.Tx) error) error); ok {
		return rf(ctx, fn)
	}
	if err := ret.Error(0); err != nil {
		return err
	}
	return fn(nil)
}

// NewMockTxManager creates a new instance of MockTxManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTxManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTxManager {
	mock := &MockTxManager{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
