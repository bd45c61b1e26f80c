package mocks

import (
	"context"

	"hashnotes/internal/model"
	"hashnotes/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockNoteService struct {
	mock.Mock
}

var _ service.NoteService = (*MockNoteService)(nil)

func (m *MockNoteService) Create(ctx context.Context, content string) (*model.Note, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteService) Get(ctx context.Context, name string) (*model.Note, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNoteService) Render(ctx context.Context, name string) (*model.RenderedNote, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RenderedNote), args.Error(1)
}
