package mocks

import (
	context "context"

	model "github.com/dtroode/studyflow-waitlist/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// RecordStore is a mock type for the RecordStore type
type RecordStore struct {
	mock.Mock
}

// Append provides a mock function with given fields: ctx, collection, fields
func (_m *RecordStore) Append(ctx context.Context, collection string, fields model.Fields) (string, error) {
	ret := _m.Called(ctx, collection, fields)

	if len(ret) == 0 {
		panic("no return value specified for Append")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, model.Fields) (string, error)); ok {
		return rf(ctx, collection, fields)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, model.Fields) string); ok {
		r0 = rf(ctx, collection, fields)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, model.Fields) error); ok {
		r1 = rf(ctx, collection, fields)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewRecordStore creates a new instance of RecordStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewRecordStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *RecordStore {
	mock := &RecordStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
