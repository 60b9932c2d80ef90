package mocks

import (
	context "context"

	model "github.com/dtroode/studyflow-waitlist/internal/model"
	mock "github.com/stretchr/testify/mock"
)

// DocumentStore is a mock type for the DocumentStore type
type DocumentStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, doc
func (_m *DocumentStore) Create(ctx context.Context, doc model.Document) (model.Document, error) {
	ret := _m.Called(ctx, doc)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 model.Document
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.Document) (model.Document, error)); ok {
		return rf(ctx, doc)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.Document) model.Document); ok {
		r0 = rf(ctx, doc)
	} else {
		r0 = ret.Get(0).(model.Document)
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.Document) error); ok {
		r1 = rf(ctx, doc)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Ping provides a mock function with given fields: ctx
func (_m *DocumentStore) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Ping")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewDocumentStore creates a new instance of DocumentStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewDocumentStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *DocumentStore {
	mock := &DocumentStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
