package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hashnotes/internal/digest"
	"hashnotes/internal/markdown"
	"hashnotes/internal/model"
	"hashnotes/internal/storage"
)

var (
	ErrNotFound       = errors.New("note not found")
	ErrInvalidContent = errors.New("invalid note content")
)

// NoteService defines the use cases for handling notes.
type NoteService interface {
	// Create validates content, stores it under its digest and returns the note.
	// Storing identical content twice yields the same note.
	Create(ctx context.Context, content string) (*model.Note, error)

	// Get returns the note stored under name, or ErrNotFound.
	Get(ctx context.Context, name string) (*model.Note, error)

	// Render returns the note stored under name converted to HTML, or ErrNotFound.
	Render(ctx context.Context, name string) (*model.RenderedNote, error)
}

// noteService is a concrete implementation of NoteService.
type noteService struct {
	store     storage.Storage
	renderer  *markdown.Renderer
	maxLength int
	tracer    trace.Tracer
}

// NewNoteService constructs a new NoteService. maxLength caps submitted
// content in characters; zero or less disables the cap.
func NewNoteService(store storage.Storage, renderer *markdown.Renderer, maxLength int) NoteService {
	return &noteService{
		store:     store,
		renderer:  renderer,
		maxLength: maxLength,
		tracer:    otel.Tracer("hashnotes/internal/service"),
	}
}

func (s *noteService) Create(ctx context.Context, content string) (*model.Note, error) {
	ctx, span := s.tracer.Start(ctx, "NoteService.Create")
	defer span.End()

	if err := s.validate(content); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		return nil, err
	}

	key := digest.Of(content)
	span.SetAttributes(attribute.String("note.digest", key), attribute.Int("note.size", len(content)))

	info, err := s.store.Put(ctx, key, strings.NewReader(content), storage.PutObjectOptions{
		Size: int64(len(content)),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store note")
		return nil, fmt.Errorf("store note: %w", err)
	}

	return &model.Note{
		Digest:     key,
		Content:    content,
		Size:       info.Size,
		ModifiedAt: info.LastModified,
	}, nil
}

func (s *noteService) Get(ctx context.Context, name string) (*model.Note, error) {
	ctx, span := s.tracer.Start(ctx, "NoteService.Get", trace.WithAttributes(attribute.String("note.name", name)))
	defer span.End()

	note, err := s.get(ctx, name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read note")
	}
	return note, err
}

func (s *noteService) Render(ctx context.Context, name string) (*model.RenderedNote, error) {
	ctx, span := s.tracer.Start(ctx, "NoteService.Render", trace.WithAttributes(attribute.String("note.name", name)))
	defer span.End()

	note, err := s.get(ctx, name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, "read note")
		}
		return nil, err
	}

	doc, err := s.renderer.Render([]byte(note.Content))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render note")
		return nil, err
	}

	return &model.RenderedNote{
		Digest:      name,
		HTML:        doc.HTML,
		TOC:         doc.TOC,
		Title:       doc.Summary.Title,
		Description: doc.Summary.Description,
	}, nil
}

func (s *noteService) get(ctx context.Context, name string) (*model.Note, error) {
	rc, info, err := s.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open note: %w", err)
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read note: %w", err)
	}
	return &model.Note{
		Digest:     name,
		Content:    string(b),
		Size:       int64(len(b)),
		ModifiedAt: info.LastModified,
	}, nil
}

func (s *noteService) validate(content string) error {
	if s.maxLength <= 0 {
		return nil
	}
	if err := validation.Validate(content, validation.RuneLength(0, s.maxLength)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}
	return nil
}
