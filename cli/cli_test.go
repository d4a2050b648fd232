package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/nathoo/aventura/engine"
	"github.com/nathoo/aventura/engine/world"
	"github.com/nathoo/aventura/types"
)

// testWorld returns a minimal world for CLI testing.
func testWorld(t *testing.T) *world.World {
	t.Helper()
	data := &types.WorldData{
		Title: "Test World",
		Intro: "Welcome to the test.",
		Locations: []types.LocationDef{
			{Name: "Floresta", Description: "Uma floresta escura.", TakesTo: []string{"Vila"}},
			{Name: "Vila", Description: "Uma vila tranquila.", TakesTo: []string{"Floresta"}},
		},
		Items: []types.ItemDef{
			{Name: "Tocha", Description: "Uma tocha.", Location: "Floresta", Pickable: true},
		},
		Characters: []types.CharacterDef{
			{Name: "Ferreiro", Description: "Um homem forte.", Location: "Vila", Dialog: []string{"Precisa de uma espada?"}},
		},
	}
	w, _, err := world.Build(data, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("world.Build: %v", err)
	}
	return w
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := New(testWorld(t), engine.WithLogger(slog.New(slog.DiscardHandler)))
	c.In = strings.NewReader(input)
	c.Out = &out
	return c, &out
}

func run(t *testing.T, c *CLI) {
	t.Helper()
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestCLI_IntroAndStartingPlace(t *testing.T) {
	c, out := newTestCLI(t, "Ana\n/quit\n")
	run(t, c)

	output := out.String()
	if !strings.Contains(output, "Test World") {
		t.Error("expected title in output")
	}
	if !strings.Contains(output, "Welcome to the test.") {
		t.Error("expected intro text in output")
	}
	if !strings.Contains(output, "Bem-vindo, Ana!") {
		t.Error("expected greeting in output")
	}
	if !strings.Contains(output, "Uma floresta escura.") {
		t.Error("expected starting place description in output")
	}
}

func TestCLI_NamePrompt(t *testing.T) {
	c, out := newTestCLI(t, "\n   \nAna\nsair\n")
	run(t, c)

	if n := strings.Count(out.String(), "Digite seu nome"); n != 3 {
		t.Errorf("expected 3 name prompts, got %d", n)
	}
	if c.Engine == nil || c.Engine.Player.Name != "Ana" {
		t.Fatal("expected a session for Ana")
	}
}

func TestCLI_NamePromptSair(t *testing.T) {
	c, out := newTestCLI(t, "SAIR\n")
	run(t, c)

	if c.Engine != nil {
		t.Error("no session should start")
	}
	if !strings.Contains(out.String(), engine.Farewell) {
		t.Error("expected farewell")
	}
}

func TestCLI_PresetName(t *testing.T) {
	c, out := newTestCLI(t, "sair\n")
	c.PlayerName = "Bia"
	run(t, c)

	if strings.Contains(out.String(), "Digite seu nome") {
		t.Error("name prompt should be skipped")
	}
	if !strings.Contains(out.String(), "Bem-vindo, Bia!") {
		t.Error("expected greeting for Bia")
	}
}

func TestCLI_ActionsListed(t *testing.T) {
	c, out := newTestCLI(t, "Ana\nsair\n")
	run(t, c)

	output := out.String()
	for _, want := range []string{"== AÇÕES DISPONÍVEIS ==", "- pegar Tocha", "- ir para Vila"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestCLI_ActionsHidden(t *testing.T) {
	c, out := newTestCLI(t, "Ana\nsair\n")
	c.ShowActions = false
	run(t, c)

	if strings.Contains(out.String(), "AÇÕES DISPONÍVEIS") {
		t.Error("actions should not be listed")
	}
}

func TestCLI_Gameplay(t *testing.T) {
	c, out := newTestCLI(t, "Ana\npegar tocha\nir para vila\nfalar com ferreiro\ni\nsair\n")
	run(t, c)

	output := out.String()
	for _, want := range []string{
		"Você pegou Tocha.",
		"Você foi para Vila.",
		"Ferreiro: Precisa de uma espada?",
		"- Tocha: Uma tocha.",
		engine.Farewell,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	if c.Engine.Current.Name != "Vila" {
		t.Errorf("expected to end in Vila, got %q", c.Engine.Current.Name)
	}
}

func TestCLI_SairStopsReading(t *testing.T) {
	c, out := newTestCLI(t, "Ana\nsair\npegar tocha\n")
	run(t, c)

	if strings.Contains(out.String(), "Você pegou") {
		t.Error("commands after sair should not run")
	}
}

func TestCLI_EndOfInput(t *testing.T) {
	c, _ := newTestCLI(t, "Ana\nolhar\n")
	run(t, c)
	if c.Engine.TurnCount != 1 {
		t.Errorf("expected 1 turn, got %d", c.Engine.TurnCount)
	}
}

func TestCLI_HelpCommand(t *testing.T) {
	c, out := newTestCLI(t, "Ana\n/help\n/quit\n")
	run(t, c)

	output := out.String()
	if !strings.Contains(output, "/quit   — Sair do jogo") {
		t.Error("expected system commands in help")
	}
	if !strings.Contains(output, "ir para <lugar>") {
		t.Error("expected game commands in help")
	}
}

func TestCLI_UnknownMetaCommand(t *testing.T) {
	c, out := newTestCLI(t, "Ana\n/foo\n/quit\n")
	run(t, c)

	if !strings.Contains(out.String(), "Comando desconhecido: /foo") {
		t.Error("expected unknown command message")
	}
}

func TestCLI_TraceToggle(t *testing.T) {
	c, out := newTestCLI(t, "Ana\n/trace\npegar tocha\n/trace\n/quit\n")
	run(t, c)

	output := out.String()
	if !strings.Contains(output, "Rastreamento de eventos ativado.") || !strings.Contains(output, "Rastreamento de eventos desativado.") {
		t.Error("expected trace toggle messages")
	}
	if !strings.Contains(output, "item_taken") {
		t.Error("expected traced event")
	}
}

func TestCLI_StateCommand(t *testing.T) {
	c, out := newTestCLI(t, "Ana\npegar tocha\n/state\n/quit\n")
	run(t, c)

	output := out.String()
	for _, want := range []string{"[Turno: 1]", "[Local: Floresta]", "[Vida: 100/100]", "[Inventário: [Tocha]]"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in state dump", want)
		}
	}
}

func TestCLI_ScriptPlayback(t *testing.T) {
	script := "# script\nAna\n\n# comment\nolhar\n/quit\n"
	c, out := newTestCLI(t, script)
	c.EchoInput = true
	c.ShowActions = false
	run(t, c)

	output := out.String()
	if strings.Contains(output, "# comment") {
		t.Error("comment lines should be skipped")
	}
	if !strings.Contains(output, "> olhar") {
		t.Error("expected echoed input after the prompt")
	}
	if c.Engine.TurnCount != 1 {
		t.Errorf("expected 1 turn, got %d", c.Engine.TurnCount)
	}
}

func TestCLI_WrapsOutput(t *testing.T) {
	c, out := newTestCLI(t, "Ana\n/quit\n")
	c.World.Intro = strings.Repeat("palavra ", 20)
	c.Width = 20
	run(t, c)

	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "palavra") && len(line) > 20 {
			t.Errorf("line not wrapped: %q", line)
		}
	}
}

func TestCLI_UnknownStart(t *testing.T) {
	var out bytes.Buffer
	c := New(testWorld(t), engine.WithStart("Castelo"), engine.WithLogger(slog.New(slog.DiscardHandler)))
	c.In = strings.NewReader("Ana\n")
	c.Out = &out
	if err := c.Run(); err == nil {
		t.Fatal("expected error for unknown start place")
	}
}
