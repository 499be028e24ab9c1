package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/nodehtml/pkg/htmlnode"
)

// isolate points XDG dirs at a temp dir and returns a config path inside it.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	cfg := filepath.Join(tmp, "config.toml")
	content := `data_dir = "` + strings.ReplaceAll(filepath.Join(tmp, "data"), "\\", "\\\\") + `"
[render]
pager = false
`
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o600))
	return cfg
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

const pageDoc = `{"tag":"div","props":{"class":"container"},"children":[
  {"tag":"h1","value":"Title"},
  {"tag":"p","children":[{"value":"Hello "},{"tag":"b","value":"world"}]}
]}`

func TestRenderStdin(t *testing.T) {
	cfg := isolate(t)
	out, err := run(t, pageDoc, "--config", cfg, "render")
	require.NoError(t, err)
	assert.Equal(t, `<div class="container"><h1>Title</h1><p>Hello <b>world</b></p></div>`+"\n", out)
}

func TestRenderFileJSON(t *testing.T) {
	cfg := isolate(t)
	path := filepath.Join(t.TempDir(), "page.json")
	require.NoError(t, os.WriteFile(path, []byte(pageDoc), 0o600))

	out, err := run(t, "", "--config", cfg, "render", path, "--output", "json")
	require.NoError(t, err)
	var doc struct {
		HTML        string `json:"html"`
		Fingerprint string `json:"fingerprint"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.True(t, strings.HasPrefix(doc.HTML, `<div class="container">`))
	assert.Equal(t, htmlnode.HashString(doc.HTML), doc.Fingerprint)
}

func TestRenderErrors(t *testing.T) {
	cfg := isolate(t)

	_, err := run(t, `{"tag":"div","children":[]}`, "--config", cfg, "render")
	assert.True(t, errors.Is(err, htmlnode.ErrInvalidContainer), "got %v", err)

	_, err = run(t, `{"tag":"span"}`, "--config", cfg, "render")
	assert.True(t, errors.Is(err, htmlnode.ErrMissingValue), "got %v", err)

	_, err = run(t, pageDoc, "--config", cfg, "render", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render.output")

	_, err = run(t, "", "--config", cfg, "render", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRenderWithCache(t *testing.T) {
	cfg := isolate(t)
	first, err := run(t, pageDoc, "--config", cfg, "render", "--cache")
	require.NoError(t, err)
	second, err := run(t, pageDoc, "--config", cfg, "render", "--cache")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(cfg), "data", "cache.db*"))
	require.NoError(t, err)
	assert.NotEmpty(t, matches)
}

func TestSpansCmd(t *testing.T) {
	cfg := isolate(t)
	in := "{\"text\":\"Run \",\"style\":\"plain\"}\n{\"text\":\"go test\",\"style\":\"code\"}\n"

	out, err := run(t, in, "--config", cfg, "spans")
	require.NoError(t, err)
	assert.Equal(t, "<p>Run <code>go test</code></p>\n", out)

	out, err = run(t, in, "--config", cfg, "spans", "--wrap", "li")
	require.NoError(t, err)
	assert.Equal(t, "<li>Run <code>go test</code></li>\n", out)

	_, err = run(t, `[{"text":"x","style":"itlic"}]`, "--config", cfg, "spans")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean italic")
}

func TestFingerprintCmd(t *testing.T) {
	cfg := isolate(t)
	out, err := run(t, pageDoc, "--config", cfg, "fingerprint")
	require.NoError(t, err)

	n, err := htmlnode.DecodeNode([]byte(pageDoc))
	require.NoError(t, err)
	want, err := htmlnode.Fingerprint(n)
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)

	out, err = run(t, `[{"text":"a","style":"bold"}]`, "--config", cfg, "fingerprint", "--spans")
	require.NoError(t, err)
	assert.Equal(t, htmlnode.HashString("<p><b>a</b></p>")+"\n", out)
}

func TestStylesCmd(t *testing.T) {
	cfg := isolate(t)
	out, err := run(t, "", "--config", cfg, "styles")
	require.NoError(t, err)
	for _, want := range []string{"plain", "bold", "<b>sample</b>", "<i>sample</i>", "<code>sample</code>", `<a href="https://example.com">sample</a>`, `<img src="https://example.com" alt="sample"></img>`} {
		assert.Contains(t, out, want)
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	cfg := isolate(t)
	bad := filepath.Join(filepath.Dir(cfg), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[render]\noutput = \"xml\"\n"), 0o600))
	_, err := run(t, pageDoc, "--config", bad, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestConfigGenerate(t *testing.T) {
	isolate(t)
	out := filepath.Join(t.TempDir(), "nodehtml", "config.toml")

	msg, err := run(t, "", "config", "generate", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, msg, "Wrote "+out)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[render]")

	_, err = run(t, "", "config", "generate", "-o", out)
	assert.Error(t, err)

	msg, err = run(t, "", "config", "generate", "-o", out, "--update")
	require.NoError(t, err)
	assert.Contains(t, msg, "Config already up to date")

	// A broken config must not prevent regenerating it.
	require.NoError(t, os.WriteFile(out, []byte("render = [oops"), 0o600))
	_, err = run(t, "", "--config", out, "config", "generate", "-o", out, "--overwrite")
	require.NoError(t, err)
	_, err = os.Stat(out + ".bak")
	assert.NoError(t, err)
}

func TestCompletion(t *testing.T) {
	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "nodehtml-cli")
}

func TestUnsetFlagsKeepFileConfig(t *testing.T) {
	cfg := isolate(t)
	f, err := os.OpenFile(cfg, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("output = \"json\"\nwrap = \"li\"\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	out, err := run(t, `[{"text":"a","style":"bold"}]`, "--config", cfg, "spans")
	require.NoError(t, err)
	assert.JSONEq(t, `{"html":"<li><b>a</b></li>","fingerprint":"`+htmlnode.HashString("<li><b>a</b></li>")+`"}`, out)

	out, err = run(t, `[{"text":"a","style":"bold"}]`, "--config", cfg, "spans", "-o", "html", "--wrap", "p")
	require.NoError(t, err)
	assert.Equal(t, "<p><b>a</b></p>\n", out)
}

func TestConfigGenerateUpdate(t *testing.T) {
	isolate(t)
	out := filepath.Join(t.TempDir(), "config.toml")
	old := "legacy = 1\n[render]\noutput = \"json\"\n"
	require.NoError(t, os.WriteFile(out, []byte(old), 0o600))

	msg, err := run(t, "", "config", "generate", "-o", out, "--update")
	require.NoError(t, err)
	assert.Contains(t, msg, "Backup: "+out+".bak")

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "# legacy = 1")
	assert.Contains(t, string(b), `output = "json"`)
	assert.Contains(t, string(b), "[cache]")

	backup, err := os.ReadFile(out + ".bak")
	require.NoError(t, err)
	assert.Equal(t, old, string(backup))

	_, err = run(t, "", "config", "generate", "-o", out, "--update", "--overwrite")
	assert.Error(t, err)
}
