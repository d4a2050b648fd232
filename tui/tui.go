package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/nathoo/aventura/engine"
	"github.com/nathoo/aventura/engine/world"
	"github.com/nathoo/aventura/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text     string
	kind     lineKind
	isInput  bool // true for echoed player input
	isSystem bool // true for system messages
}

// Model is the Bubble Tea model for the Aventura TUI. It starts in the
// name phase (engine nil) and switches to play once a session exists.
type Model struct {
	world      *world.World
	opts       []engine.Option
	playerName string
	engine     *engine.Engine

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated narrative lines (unstyled, for re-wrapping)

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
	farewell string // printed by Run once the alternate screen is gone
	err      error
}

// gameOutputMsg carries output into the Update loop.
type gameOutputMsg struct {
	input    string   // echoed player input (empty for intro)
	lines    []string // output lines
	isSystem bool     // true for meta-command output
}

// introMsg triggers the title screen and, with a preset name, the session.
type introMsg struct{}

// New creates a TUI model for the world. When playerName is set the name
// phase is skipped.
func New(w *world.World, playerName string, opts ...engine.Option) Model {
	ti := textinput.New()
	ti.Prompt = "Nome: "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		world:      w,
		opts:       opts,
		playerName: strings.TrimSpace(playerName),
		input:      ti,
		history:    NewHistory(100),
	}
}

// Run starts the Bubble Tea program. It returns an error when the session
// could not start. The farewell is printed after the program exits, since
// leaving the alternate screen discards its contents.
func Run(w *world.World, playerName string, opts ...engine.Option) error {
	m := New(w, playerName, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	fm, ok := final.(Model)
	if !ok {
		return nil
	}
	if fm.err != nil {
		return fm.err
	}
	if fm.farewell != "" {
		fmt.Println(fm.farewell)
	}
	return nil
}

// Init returns the initial command that produces the title screen.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return introMsg{} })
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := max(m.height-3, 1) // status bar + actions bar + input line

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case introMsg:
		lines := []string{"== " + titleOf(m.world) + " =="}
		if m.world.Intro != "" {
			lines = append(lines, m.world.Intro)
		}
		m = m.appendOutput(gameOutputMsg{lines: lines})
		if m.playerName != "" {
			return m.startSession(m.playerName)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "tab":
			if m.engine != nil {
				cands := commandsFrom(m.engine.AvailableActions())
				m.input.SetValue(complete(m.input.Value(), cands))
				m.input.CursorEnd()
			}
			return m, nil

		case "up":
			if prev, ok := m.history.Prev(m.input.Value()); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	if m.engine == nil {
		if strings.EqualFold(input, "sair") {
			m.quitting = true
			m.farewell = engine.Farewell
			return m, tea.Quit
		}
		return m.startSession(input)
	}

	m.history.Push(input)

	// Meta-commands.
	if strings.HasPrefix(input, "/") {
		output, quit := m.handleMeta(input)
		m = m.appendOutput(gameOutputMsg{input: input, lines: output, isSystem: true})
		if quit {
			m.quitting = true
			m.farewell = engine.Farewell
			return m, tea.Quit
		}
		return m, nil
	}

	// Game command.
	result := m.engine.Step(input)
	output := result.Output
	if m.trace {
		output = append(output, formatTrace(result)...)
	}
	m = m.appendOutput(gameOutputMsg{input: input, lines: output})
	if !result.Continue {
		m.quitting = true
		m.farewell = engine.Farewell
		return m, tea.Quit
	}
	return m, nil
}

// startSession creates the engine for the named player and describes the
// start place. A failure ends the program; Run reports it.
func (m Model) startSession(name string) (tea.Model, tea.Cmd) {
	eng, err := engine.New(m.world, name, m.opts...)
	if err != nil {
		m.err = fmt.Errorf("starting session: %w", err)
		m.quitting = true
		return m, tea.Quit
	}
	m.engine = eng
	m.input.Prompt = "> "

	lines := []string{fmt.Sprintf("Bem-vindo, %s! Sua aventura está prestes a começar...", eng.Player.Name), ""}
	lines = append(lines, eng.Describe()...)
	m = m.appendOutput(gameOutputMsg{lines: lines})
	return m, nil
}

// appendOutput adds lines to the narrative and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + msg.input, isInput: true,
		})
	}

	var speakers []string
	if m.world != nil {
		speakers = m.world.NPCOrder
	}
	for _, line := range msg.lines {
		rl := rawLine{text: line, isSystem: msg.isSystem}
		if !msg.isSystem {
			rl.kind = classifyLine(line, speakers)
		}
		m.rawLines = append(m.rawLines, rl)
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current width
// and updates the viewport content.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := max(m.width, 10)

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordwrap.String(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.isSystem:
			styled = append(styled, styledSystemMsg(wrapped))
		default:
			styled = append(styled, renderLineKind(wrapped, rl.kind))
		}
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindHeading:
		return styleHeading.Render(line)
	case kindYouSee:
		return styledYouSee(line)
	case kindExits:
		return styleExits.Render(line)
	case kindDialogue:
		return styleDialogue.Render(line)
	case kindSuccess:
		return styleSuccess.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	case kindTrace:
		return styleTrace.Render(line)
	default:
		return stylePlaceDesc.Render(line)
	}
}

// View renders the full TUI layout: viewport + status bar + actions bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Carregando..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.renderActionsBar() + "\n" + m.input.View()
}

// handleMeta dispatches meta-commands. Returns output lines and quit flag.
func (m *Model) handleMeta(input string) ([]string, bool) {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		return []string{engine.Farewell}, true

	case "/help":
		return m.cmdHelp(), false

	case "/state":
		return m.cmdState(), false

	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Rastreamento de eventos ativado."}, false
		}
		return []string{"Rastreamento de eventos desativado."}, false

	default:
		return []string{fmt.Sprintf("Comando desconhecido: %s. Digite /help para ver os comandos do sistema.", cmd)}, false
	}
}

func (m *Model) cmdHelp() []string {
	help := []string{
		"Sistema:",
		"  /quit   — Sair do jogo",
		"  /help   — Mostrar esta ajuda",
		"  /state  — Depuração: mostrar o estado atual",
		"  /trace  — Ligar ou desligar o rastreamento de eventos",
		"",
	}
	help = append(help, engine.HelpText()...)
	help = append(help, "", "Navegação: PgUp/PgDn para rolar, Cima/Baixo para o histórico, Tab para completar")
	return help
}

func (m *Model) cmdState() []string {
	e := m.engine
	output := []string{
		fmt.Sprintf("Sessão: %s", e.ID),
		fmt.Sprintf("Turno: %d", e.TurnCount),
		fmt.Sprintf("Local: %s", e.Current.Name),
		fmt.Sprintf("Vida: %d/%d", e.Player.Health, e.Player.MaxHealth),
		fmt.Sprintf("Inventário: %v", e.Player.ItemNames()),
	}
	if w := e.Player.Weapon(); w != nil {
		output = append(output, fmt.Sprintf("Arma: %s", w.Name))
	}
	if a := e.Player.Armor(); a != nil {
		output = append(output, fmt.Sprintf("Armadura: %s", a.Name))
	}
	return output
}

func formatTrace(result types.Result) []string {
	var lines []string
	if len(result.Events) > 0 {
		lines = append(lines, fmt.Sprintf("[trace] Eventos: %d", len(result.Events)))
		for _, e := range result.Events {
			lines = append(lines, fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
		}
	}
	return lines
}

func titleOf(w *world.World) string {
	if w.Title != "" {
		return w.Title
	}
	return "Bem-vindo à Aventura!"
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
