package mocks

import (
	context "context"

	model "github.com/dtroode/studyflow-waitlist/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// DocumentService is a mock type for the DocumentService type
type DocumentService struct {
	mock.Mock
}

// Append provides a mock function with given fields: ctx, collection, fields
func (_m *DocumentService) Append(ctx context.Context, collection string, fields model.Fields) (model.Document, error) {
	ret := _m.Called(ctx, collection, fields)

	if len(ret) == 0 {
		panic("no return value specified for Append")
	}

	var r0 model.Document
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, model.Fields) (model.Document, error)); ok {
		return rf(ctx, collection, fields)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, model.Fields) model.Document); ok {
		r0 = rf(ctx, collection, fields)
	} else {
		r0 = ret.Get(0).(model.Document)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, model.Fields) error); ok {
		r1 = rf(ctx, collection, fields)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Health provides a mock function with given fields: ctx
func (_m *DocumentService) Health(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Health")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewDocumentService creates a new instance of DocumentService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewDocumentService(t interface {
	mock.TestingT
	Cleanup(func())
}) *DocumentService {
	mock := &DocumentService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
