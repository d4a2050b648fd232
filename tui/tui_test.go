package tui

import (
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/aventura/engine"
	"github.com/nathoo/aventura/engine/world"
	"github.com/nathoo/aventura/types"
)

func TestClassifyLine(t *testing.T) {
	speakers := []string{"Velho Sábio"}
	tests := []struct {
		line string
		want lineKind
	}{
		{"== Floresta ==", kindHeading},
		{"Você vê aqui: Tocha, Espada.", kindYouSee},
		{"Personagens aqui: Velho Sábio.", kindYouSee},
		{"Você pode ir para: Vila, Caverna.", kindExits},
		{"[Rastreamento de eventos ativado.]", kindSystem},
		{"[trace] Eventos: 1", kindTrace},
		{"Não há machado aqui.", kindError},
		{"Você não pode ir para castelo a partir daqui.", kindError},
		{"Você não está carregando tocha.", kindError},
		{"Erro: Local Caverna não encontrado.", kindError},
		{"Comando não reconhecido. Digite 'ajuda' para ver os comandos disponíveis.", kindError},
		{"Qual tocha? (Tocha, TOCHA)", kindError},
		{"Você pegou Tocha.", kindSuccess},
		{"Você foi para Vila.", kindSuccess},
		{"Você bebe Poção e recupera 20 pontos de vida.", kindSuccess},
		{"Velho Sábio: Bem-vindo, jovem.", kindDialogue},
		{"Ferreiro: Olá.", kindPlaceDesc},
		{"Árvores altas bloqueiam a luz.", kindPlaceDesc},
		{"", kindPlaceDesc},
	}
	for _, tt := range tests {
		got := classifyLine(tt.line, speakers)
		if got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestStyledYouSee_KeepsText(t *testing.T) {
	for _, line := range []string{"Você vê aqui: Tocha.", "Personagens aqui: Ferreiro.", "Outra coisa."} {
		got := styledYouSee(line)
		if !strings.Contains(got, strings.SplitN(line, ": ", 2)[0]) {
			t.Errorf("styledYouSee(%q) lost its text: %q", line, got)
		}
	}
}

func TestCommandsFrom(t *testing.T) {
	groups := []types.ActionGroup{
		{Title: "AÇÕES DISPONÍVEIS", Actions: []string{"olhar: Ver descrição do local", "inventario (ou i): Ver seus itens"}},
		{Title: "LUGARES PARA ONDE VOCÊ PODE IR", Actions: []string{"ir para Vila"}},
	}
	got := strings.Join(commandsFrom(groups), "|")
	want := "olhar|inventario|ir para Vila"
	if got != want {
		t.Errorf("commandsFrom = %q, want %q", got, want)
	}
}

func TestComplete(t *testing.T) {
	cands := []string{"pegar Tocha", "pegar Espada", "ir para Vila", "ir para Caverna", "olhar"}
	tests := []struct {
		input string
		want  string
	}{
		{"pe", "pegar "},
		{"pegar t", "pegar Tocha"},
		{"PEGAR E", "pegar Espada"},
		{"ir para V", "ir para Vila"},
		{"ir", "ir para "},
		{"ol", "olhar"},
		{"x", "x"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := complete(tt.input, cands); got != tt.want {
			t.Errorf("complete(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("olhar")
	h.Push("ir para vila")
	h.Push("pegar tocha")

	for _, want := range []string{"pegar tocha", "ir para vila", "olhar", "olhar"} {
		prev, ok := h.Prev("")
		if !ok || prev != want {
			t.Errorf("expected %q, got %q (ok=%v)", want, prev, ok)
		}
	}
}

func TestHistory_NextRestoresDraft(t *testing.T) {
	h := NewHistory(5)
	h.Push("olhar")
	h.Push("ir para vila")

	h.Prev("pegar to") // "ir para vila"
	h.Prev("")         // "olhar"

	next, ok := h.Next()
	if !ok || next != "ir para vila" {
		t.Errorf("expected 'ir para vila', got %q (ok=%v)", next, ok)
	}
	next, ok = h.Next()
	if !ok || next != "pegar to" {
		t.Errorf("expected draft 'pegar to', got %q (ok=%v)", next, ok)
	}
	if _, ok := h.Next(); ok {
		t.Error("expected ok=false when not navigating")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev("x"); ok {
		t.Error("expected ok=false for empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected ok=false for empty history")
	}
}

func TestHistory_RingOverwritesOldest(t *testing.T) {
	h := NewHistory(3)
	for _, cmd := range []string{"a", "b", "c", "d", "e"} {
		h.Push(cmd)
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.Len())
	}
	for _, want := range []string{"e", "d", "c", "c"} {
		if got, _ := h.Prev(""); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestHistory_NoDuplicates(t *testing.T) {
	h := NewHistory(5)
	h.Push("olhar")
	h.Push("olhar")
	h.Push("olhar")
	if h.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", h.Len())
	}
}

func TestHistory_PushResetsNavigation(t *testing.T) {
	h := NewHistory(5)
	h.Push("olhar")
	h.Push("status")
	h.Prev("")
	h.Prev("")
	h.Push("ajuda")

	prev, _ := h.Prev("")
	if prev != "ajuda" {
		t.Errorf("expected navigation to restart at newest, got %q", prev)
	}
}

// testWorld returns a minimal world for TUI testing.
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
	}
	w, _, err := world.Build(data, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("world.Build: %v", err)
	}
	return w
}

func newTestModel(t *testing.T, name string) Model {
	t.Helper()
	m := New(testWorld(t), name, engine.WithLogger(slog.New(slog.DiscardHandler)))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	updated, _ = updated.Update(introMsg{})
	return updated.(Model)
}

func submit(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func rawText(m Model) string {
	var b strings.Builder
	for _, rl := range m.rawLines {
		b.WriteString(rl.text)
		b.WriteString("\n")
	}
	return b.String()
}

func TestModel_NamePhase(t *testing.T) {
	m := newTestModel(t, "")
	if m.engine != nil {
		t.Fatal("engine should not exist before a name is given")
	}
	if !strings.Contains(rawText(m), "Welcome to the test.") {
		t.Error("expected intro text")
	}

	m, _ = submit(t, m, "   ")
	if m.engine != nil {
		t.Fatal("blank name should be ignored")
	}

	m, _ = submit(t, m, "Ana")
	if m.engine == nil || m.engine.Player.Name != "Ana" {
		t.Fatal("expected a session for Ana")
	}
	if !strings.Contains(rawText(m), "Uma floresta escura.") {
		t.Error("expected start place description")
	}
	if m.input.Prompt != "> " {
		t.Errorf("expected command prompt, got %q", m.input.Prompt)
	}
}

func TestModel_NamePhaseSair(t *testing.T) {
	m := newTestModel(t, "")
	m, cmd := submit(t, m, "sair")
	if !m.quitting || cmd == nil {
		t.Error("expected quit from the name phase")
	}
	if m.farewell != engine.Farewell {
		t.Errorf("farewell = %q, want it kept for after the program exits", m.farewell)
	}
}

func TestModel_PresetName(t *testing.T) {
	m := newTestModel(t, "Bia")
	if m.engine == nil || m.engine.Player.Name != "Bia" {
		t.Fatal("expected a session for Bia without prompting")
	}
}

func TestModel_UnknownStart(t *testing.T) {
	m := New(testWorld(t), "Ana", engine.WithStart("Castelo"), engine.WithLogger(slog.New(slog.DiscardHandler)))
	updated, _ := m.Update(introMsg{})
	fm := updated.(Model)
	if fm.err == nil || !fm.quitting {
		t.Error("expected session error and quit")
	}
}

func TestModel_PlayAndQuit(t *testing.T) {
	m := newTestModel(t, "Ana")

	m, _ = submit(t, m, "pegar tocha")
	if !m.engine.Player.Has("Tocha") {
		t.Error("expected Tocha in inventory")
	}
	out := rawText(m)
	if !strings.Contains(out, "> pegar tocha") || !strings.Contains(out, "Você pegou Tocha.") {
		t.Errorf("expected echoed input and narration, got %q", out)
	}
	if m.history.Len() != 1 {
		t.Errorf("expected 1 history entry, got %d", m.history.Len())
	}

	m, cmd := submit(t, m, "sair")
	if !m.quitting || cmd == nil {
		t.Error("expected quit after sair")
	}
	if m.View() != "" {
		t.Error("expected empty view when quitting")
	}
	if m.farewell != engine.Farewell {
		t.Errorf("farewell = %q, want it kept for after the program exits", m.farewell)
	}
}

func TestModel_QuitMetaKeepsFarewell(t *testing.T) {
	m := newTestModel(t, "Ana")
	m, cmd := submit(t, m, "/quit")
	if !m.quitting || cmd == nil {
		t.Fatal("expected quit after /quit")
	}
	if m.farewell != engine.Farewell {
		t.Errorf("farewell = %q, want %q", m.farewell, engine.Farewell)
	}
}

func TestModel_CtrlCHasNoFarewell(t *testing.T) {
	m := newTestModel(t, "Ana")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if fm := updated.(Model); !fm.quitting || fm.farewell != "" {
		t.Errorf("ctrl+c should quit silently, got quitting=%v farewell=%q", fm.quitting, fm.farewell)
	}
}

func TestModel_TabCompletes(t *testing.T) {
	m := newTestModel(t, "Ana")
	m.input.SetValue("pegar t")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.input.Value() != "pegar Tocha" {
		t.Errorf("expected completion, got %q", m.input.Value())
	}
}

func TestModel_StatusAndActionsBars(t *testing.T) {
	m := newTestModel(t, "Ana")
	status := m.renderStatusBar()
	if !strings.Contains(status, "Floresta") || !strings.Contains(status, "Vida: 100/100") {
		t.Errorf("unexpected status bar: %q", status)
	}
	actions := m.renderActionsBar()
	if !strings.Contains(actions, "pegar Tocha") || !strings.Contains(actions, "ir para Vila") {
		t.Errorf("unexpected actions bar: %q", actions)
	}
	if strings.Contains(actions, "olhar") {
		t.Error("always-available actions belong in /help")
	}
}

func TestHandleMeta_Quit(t *testing.T) {
	m := newTestModel(t, "Ana")
	for _, cmd := range []string{"/quit", "/exit"} {
		if _, quit := m.handleMeta(cmd); !quit {
			t.Errorf("expected quit=true for %s", cmd)
		}
	}
}

func TestHandleMeta_Help(t *testing.T) {
	m := newTestModel(t, "Ana")
	output, quit := m.handleMeta("/help")
	if quit {
		t.Error("/help should not quit")
	}
	joined := strings.Join(output, "\n")
	if !strings.Contains(joined, "Sistema:") || !strings.Contains(joined, "/state  — Depuração") || !strings.Contains(joined, "falar com <personagem>") {
		t.Errorf("unexpected help: %q", joined)
	}
}

func TestHandleMeta_Trace(t *testing.T) {
	m := newTestModel(t, "Ana")
	output, _ := m.handleMeta("/trace")
	if !m.trace || output[0] != "Rastreamento de eventos ativado." {
		t.Error("expected trace enabled")
	}

	m, _ = submit(t, m, "pegar tocha")
	if !strings.Contains(rawText(m), "[trace]   item_taken") {
		t.Error("expected traced event in output")
	}

	output, _ = m.handleMeta("/trace")
	if m.trace || output[0] != "Rastreamento de eventos desativado." {
		t.Error("expected trace disabled")
	}
}

func TestHandleMeta_Unknown(t *testing.T) {
	m := newTestModel(t, "Ana")
	output, quit := m.handleMeta("/foo")
	if quit {
		t.Error("unknown meta command should not quit")
	}
	if !strings.Contains(output[0], "Comando desconhecido: /foo") {
		t.Errorf("unexpected output: %v", output)
	}
}

func TestHandleMeta_State(t *testing.T) {
	m := newTestModel(t, "Ana")
	output, _ := m.handleMeta("/state")
	joined := strings.Join(output, "\n")
	for _, want := range []string{"Turno: 0", "Local: Floresta", "Vida: 100/100"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in state output", want)
		}
	}
}
