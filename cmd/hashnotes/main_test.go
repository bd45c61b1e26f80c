package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hashnotes/docs"
	"hashnotes/internal/config"
	"hashnotes/internal/digest"
	"hashnotes/internal/model"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_PutCatRender(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")
	content := "# Hello\n\nWorld"

	out, err := run(t, content, "put", "--notes-dir", dir)
	require.NoError(t, err)
	name := strings.TrimSpace(out)
	assert.Equal(t, digest.Of(content), name)

	out, err = run(t, "", "cat", "--notes-dir", dir, name)
	require.NoError(t, err)
	assert.Equal(t, content, out)

	out, err = run(t, "", "render", "--notes-dir", dir, name)
	require.NoError(t, err)
	assert.Contains(t, out, "<p>World</p>")

	out, err = run(t, "", "render", "--json", "--notes-dir", dir, name)
	require.NoError(t, err)
	var rendered model.RenderedNote
	require.NoError(t, json.Unmarshal([]byte(out), &rendered))
	assert.Equal(t, "Hello", rendered.Title)
	assert.Equal(t, "World", rendered.Description)
}

func TestCLI_CatMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notes")

	_, err := run(t, "", "cat", "--notes-dir", dir, "../../etc/passwd")
	assert.Error(t, err)
}

func TestCLI_Digest(t *testing.T) {
	out, err := run(t, "hello world", "digest")
	require.NoError(t, err)
	assert.Equal(t, "uU0nuZNNPgilLlLX2n2r-sSE7-N6U4DukIj3rOLvzek=\n", out)
}

func TestConfigureSwagger(t *testing.T) {
	t.Cleanup(func() {
		docs.SwaggerInfo.Host = ""
		docs.SwaggerInfo.Schemes = []string{}
	})

	configureSwagger(&config.AppConfig{AppHost: "notes.example.com", AppScheme: "https"})

	assert.Equal(t, "notes.example.com", docs.SwaggerInfo.Host)
	assert.Equal(t, []string{"https"}, docs.SwaggerInfo.Schemes)
	assert.Contains(t, docs.SwaggerInfo.ReadDoc(), `"host": "notes.example.com"`)
}
