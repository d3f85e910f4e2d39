package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/pokeapi/pokeapitest"
)

type cliTestEnv struct {
	fake       *pokeapitest.Fake
	configPath string
	prefsPath  string
	logPath    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))

	logPath := filepath.Join(base, "state", "pokedex.log")
	configPath := filepath.Join(base, "config.toml")
	body := "log_level = \"debug\"\nlog_file = \"" + logPath + "\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return &cliTestEnv{
		fake:       pokeapitest.New(),
		configPath: configPath,
		prefsPath:  filepath.Join(base, "prefs.toml"),
		logPath:    logPath,
	}
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	var configFlag, prefsFlag string
	ctx := newCommandContext(&configFlag, &prefsFlag)
	ctx.client = env.fake
	ctx.terminal = func(io.Writer) bool { return false }

	cmd := buildRootCommand(ctx)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath, "--prefs", env.prefsPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

const listBody = `{"count":2,"results":[
	{"name":"bulbasaur","url":"https://pokeapi.co/api/v2/pokemon/1/"},
	{"name":"mr-mime","url":"https://pokeapi.co/api/v2/pokemon/122/"}
]}`

func TestListTable(t *testing.T) {
	env := setupCLITestEnv(t)
	env.fake.RespondRaw("pokemon", []byte(listBody))

	out, _, err := runCLI(t, env, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Bulbasaur")
	requireContains(t, out, "bulbasaur")
	requireContains(t, out, "mr-mime")
}

func TestRootPrintsListWhenNotATerminal(t *testing.T) {
	env := setupCLITestEnv(t)
	env.fake.RespondRaw("pokemon", []byte(listBody))

	out, _, err := runCLI(t, env)
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	requireContains(t, out, "Bulbasaur")
}

func TestListJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	env.fake.RespondRaw("pokemon", []byte(listBody))

	out, _, err := runCLI(t, env, "list", "--json")
	if err != nil {
		t.Fatalf("list --json: %v", err)
	}
	var items []listItemJSON
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if len(items) != 2 || items[1].Name != "mr-mime" || items[1].ID != "mr-mime" {
		t.Fatalf("items = %+v", items)
	}
}

func TestListFailureReturnsMessage(t *testing.T) {
	env := setupCLITestEnv(t)
	env.fake.Fail("pokemon", &pokeapi.APIError{Kind: pokeapi.KindBadStatus, Path: "pokemon", StatusCode: 503})

	_, _, err := runCLI(t, env, "list")
	if err == nil {
		t.Fatal("list returned nil error on failure")
	}
	requireContains(t, err.Error(), "status 503")
}

func TestShow(t *testing.T) {
	env := setupCLITestEnv(t)
	env.fake.RespondRaw("pokemon/raichu", []byte(`{"id":26,"name":"raichu","height":8,"sprites":{
		"front_default":"https://img.example/26.png",
		"other":{"official-artwork":{"front_default":"https://img.example/art/26.png"}}}}`))

	out, _, err := runCLI(t, env, "show", "  Raichu ")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Raichu")
	requireContains(t, out, "8")
	requireContains(t, out, "https://img.example/art/26.png")

	out, _, err = runCLI(t, env, "show", "raichu", "--json")
	if err != nil {
		t.Fatalf("show --json: %v", err)
	}
	var got pokemonJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if got.Name != "raichu" || got.Height != "8" || got.ImageURL != "https://img.example/art/26.png" {
		t.Fatalf("show --json = %+v", got)
	}
}

func TestShowRequiresName(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, env, "show"); err == nil {
		t.Fatal("show without a name returned nil error")
	}
	if _, _, err := runCLI(t, env, "show", "   "); err == nil {
		t.Fatal("show with a blank name returned nil error")
	}
}

func TestLogsFiltersByLevel(t *testing.T) {
	env := setupCLITestEnv(t)
	env.fake.Fail("pokemon", &pokeapi.APIError{Kind: pokeapi.KindTransport, Path: "pokemon"})
	if _, _, err := runCLI(t, env, "list"); err == nil {
		t.Fatal("list returned nil error on transport failure")
	}

	out, _, err := runCLI(t, env, "logs", "--level", "warn")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "load failed")
	if strings.Contains(out, "level=DEBUG") {
		t.Fatalf("logs --level warn printed debug records:\n%s", out)
	}
}

func TestLogsMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)
	out, errOut, err := runCLI(t, env, "logs")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if out != "" {
		t.Fatalf("stdout = %q, want empty", out)
	}
	requireContains(t, errOut, "no log entries")
}
