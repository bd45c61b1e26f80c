package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hashnotes/internal/config"
	"hashnotes/internal/digest"
	"hashnotes/internal/markdown"
	"hashnotes/internal/service"
	"hashnotes/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type testServer struct {
	app   *fiber.App
	store *storage.DiskStorage
	base  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	base := t.TempDir()
	store, err := storage.NewDisk(filepath.Join(base, "notes"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	svc := service.NewNoteService(store, markdown.New(), config.DefaultMaxLength)
	app := fiber.New(NewConfig(config.ServerConfig{}))
	RegisterRoutes(app, store, svc, config.DefaultMaxLength)

	return &testServer{app: app, store: store, base: base}
}

func (s *testServer) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp, body(t, resp)
}

func (s *testServer) submit(t *testing.T, content string) *http.Response {
	t.Helper()
	resp, err := s.app.Test(formRequest("/edit/", url.Values{"content": {content}}))
	require.NoError(t, err)
	return resp
}

func (s *testServer) files(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(s.store.Dir())
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestEndToEnd_SubmitAndView(t *testing.T) {
	s := newTestServer(t)
	content := "# Hello\n\nWorld"
	want := digest.Of(content)
	require.Equal(t, "rW4L-Ijalkq1eZLobG-JSq7DMl17GDVauSyBur6BxKM=", want)

	resp := s.submit(t, content)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/"+want, resp.Header.Get("Location"))

	stored, err := os.ReadFile(filepath.Join(s.store.Dir(), want))
	require.NoError(t, err)
	assert.Equal(t, content, string(stored))

	view, html := s.get(t, "/"+want)
	require.Equal(t, http.StatusOK, view.StatusCode)
	assert.Contains(t, html, `<h1 id="hello">Hello</h1>`)
	assert.Contains(t, html, "<p>World</p>")
	assert.Contains(t, html, "<title>Hello</title>")
	assert.Contains(t, html, `<meta name="description" content="World">`)

	edit, form := s.get(t, "/edit/"+want)
	require.Equal(t, http.StatusOK, edit.StatusCode)
	assert.Contains(t, form, "# Hello\n\nWorld</textarea>")
}

func TestEndToEnd_RendersAreIdentical(t *testing.T) {
	s := newTestServer(t)
	resp := s.submit(t, "# T\n\n```go\nfmt.Println(\"x\")\n```\n\nA \"quote\"[^1].\n\n[^1]: note\n")
	loc := resp.Header.Get("Location")

	_, first := s.get(t, loc)
	_, second := s.get(t, loc)
	assert.Equal(t, first, second)
}

func TestEndToEnd_IdempotentSubmit(t *testing.T) {
	s := newTestServer(t)

	first := s.submit(t, "same text")
	second := s.submit(t, "same text")

	assert.Equal(t, first.Header.Get("Location"), second.Header.Get("Location"))
	assert.Equal(t, []string{digest.Of("same text")}, s.files(t))
}

func TestEndToEnd_SizeLimit(t *testing.T) {
	s := newTestServer(t)

	resp := s.submit(t, strings.Repeat("a", config.DefaultMaxLength+1))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, s.files(t))

	resp = s.submit(t, strings.Repeat("a", config.DefaultMaxLength))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Len(t, s.files(t), 1)
}

func TestEndToEnd_NotFound(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.base, "secret"), []byte("top secret"), 0o644))

	paths := []string{
		"/" + digest.Of("never stored"),
		"/..%2Fsecret",
		"/%2E%2E%2Fsecret",
		"/..%5Csecret",
		"/secret%00",
		"/edit/" + digest.Of("never stored"),
		"/edit/..%2Fsecret",
		"/edit/%2Fetc%2Fpasswd",
	}
	for _, path := range paths {
		resp, html := s.get(t, path)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.NotContains(t, html, "top secret", path)
	}
}

func TestEndToEnd_TitleEntities(t *testing.T) {
	s := newTestServer(t)
	resp := s.submit(t, "# Tom &amp; Jerry\n\nA &lt;b&gt; tag")

	_, html := s.get(t, resp.Header.Get("Location"))
	assert.Contains(t, html, "<title>Tom &amp; Jerry</title>")
	assert.Contains(t, html, `<meta name="description" content="A &lt;b&gt; tag">`)
	assert.NotContains(t, html, "&amp;amp;")
}

func TestEndToEnd_SpanNamesSurviveRequest(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	s := newTestServer(t)
	names := []string{
		strings.Repeat("A", digest.Size),
		strings.Repeat("Z", digest.Size),
		strings.Repeat("Q", digest.Size),
	}
	for _, name := range names {
		resp, _ := s.get(t, "/"+name)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	var got []string
	for _, span := range recorder.Ended() {
		if span.Name() != "NoteService.Render" {
			continue
		}
		for _, kv := range span.Attributes() {
			if kv.Key == attribute.Key("note.name") {
				got = append(got, kv.Value.AsString())
			}
		}
	}
	assert.Equal(t, names, got)
}
