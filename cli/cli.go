// Package cli provides terminal I/O, output formatting, and meta-command
// dispatch for the Aventura engine.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/nathoo/aventura/engine"
	"github.com/nathoo/aventura/engine/world"
	"github.com/nathoo/aventura/types"
)

const separator = "----------------------------------------"

// CLI handles terminal interaction with the player.
type CLI struct {
	World       *world.World
	Options     []engine.Option
	Engine      *engine.Engine // set once the player has a name
	PlayerName  string         // skips the name prompt when set
	In          io.Reader
	Out         io.Writer
	Width       int // wrap width; 0 disables wrapping
	Trace       bool
	EchoInput   bool // echo each input line after the prompt (for script playback)
	ShowActions bool // list available actions before each prompt
}

// New creates a CLI for the given world. Engine options are applied when the
// session starts.
func New(w *world.World, opts ...engine.Option) *CLI {
	return &CLI{
		World:       w,
		Options:     opts,
		In:          os.Stdin,
		Out:         os.Stdout,
		Width:       80,
		ShowActions: true,
	}
}

// Run asks for the player's name, starts the session, then loops:
// actions → prompt → input → dispatch → output. It returns when the player
// quits or input ends.
func (c *CLI) Run() error {
	scanner := bufio.NewScanner(c.In)

	c.printLine(separator)
	c.printLine(titleOf(c.World))
	c.printLine(separator)
	if c.World.Intro != "" {
		c.printWrapped(c.World.Intro)
	}

	name, ok := c.PlayerName, c.PlayerName != ""
	if !ok {
		name, ok = c.askName(scanner)
	}
	if !ok {
		c.printLine(engine.Farewell)
		return nil
	}

	eng, err := engine.New(c.World, name, c.Options...)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	c.Engine = eng

	c.printLine("")
	c.printLine(fmt.Sprintf("Bem-vindo, %s! Sua aventura está prestes a começar...", eng.Player.Name))
	c.printLine(separator)
	c.printLines(eng.Describe())
	c.printLine(separator)

	for {
		if c.ShowActions {
			c.printActions()
			c.printLine(separator)
		}
		c.print("> ")
		if !scanner.Scan() {
			c.printLine("")
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// Meta-commands start with '/'.
		if strings.HasPrefix(input, "/") {
			if c.handleMeta(input) {
				return nil // /quit
			}
			continue
		}

		result := eng.Step(input)
		c.printResult(result)

		if c.Trace {
			c.printTrace(result)
		}
		if !result.Continue {
			return nil
		}
	}
	return scanner.Err()
}

// askName prompts until a non-empty name is given. "sair" or end of input
// aborts.
func (c *CLI) askName(scanner *bufio.Scanner) (string, bool) {
	for {
		c.print("Digite seu nome (ou 'sair' para encerrar): ")
		if !scanner.Scan() {
			c.printLine("")
			return "", false
		}
		name := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(name, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(name)
		}
		if strings.EqualFold(name, "sair") {
			return "", false
		}
		if name != "" {
			return name, true
		}
	}
}

// handleMeta dispatches meta-commands. Returns true if the game should exit.
func (c *CLI) handleMeta(input string) bool {
	cmd := strings.Fields(input)[0]

	switch cmd {
	case "/quit", "/exit":
		c.printLine(engine.Farewell)
		return true

	case "/help":
		c.cmdHelp()

	case "/state":
		c.cmdState()

	case "/trace":
		c.Trace = !c.Trace
		if c.Trace {
			c.printSystem("Rastreamento de eventos ativado.")
		} else {
			c.printSystem("Rastreamento de eventos desativado.")
		}

	default:
		c.printSystem(fmt.Sprintf("Comando desconhecido: %s. Digite /help para ver os comandos do sistema.", cmd))
	}

	return false
}

func (c *CLI) cmdHelp() {
	help := []string{
		"Sistema:",
		"  /quit   — Sair do jogo",
		"  /help   — Mostrar esta ajuda",
		"  /state  — Depuração: mostrar o estado atual",
		"  /trace  — Ligar ou desligar o rastreamento de eventos",
		"",
	}
	for _, line := range help {
		c.printLine(line)
	}
	c.printLines(engine.HelpText())
}

func (c *CLI) cmdState() {
	e := c.Engine
	c.printSystem(fmt.Sprintf("Sessão: %s", e.ID))
	c.printSystem(fmt.Sprintf("Turno: %d", e.TurnCount))
	c.printSystem(fmt.Sprintf("Local: %s", e.Current.Name))
	c.printSystem(fmt.Sprintf("Vida: %d/%d", e.Player.Health, e.Player.MaxHealth))
	c.printSystem(fmt.Sprintf("Inventário: %v", e.Player.ItemNames()))
	if w := e.Player.Weapon(); w != nil {
		c.printSystem(fmt.Sprintf("Arma: %s", w.Name))
	}
	if a := e.Player.Armor(); a != nil {
		c.printSystem(fmt.Sprintf("Armadura: %s", a.Name))
	}
	if orphans := e.World.Orphans(); len(orphans) > 0 {
		c.printSystem(fmt.Sprintf("Itens perdidos: %v", orphans))
	}
}

func (c *CLI) printActions() {
	for _, group := range c.Engine.AvailableActions() {
		c.printLine("== " + group.Title + " ==")
		for _, action := range group.Actions {
			c.printLine("- " + action)
		}
	}
}

func (c *CLI) printTrace(result types.Result) {
	if len(result.Events) > 0 {
		c.printSystem(fmt.Sprintf("[trace] Eventos: %d", len(result.Events)))
		for _, e := range result.Events {
			c.printSystem(fmt.Sprintf("[trace]   %s %v", e.Type, e.Data))
		}
	}
}

func (c *CLI) printResult(result types.Result) {
	c.printLines(result.Output)
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		c.printWrapped(line)
	}
}

func (c *CLI) printWrapped(text string) {
	if c.Width > 0 {
		text = wordwrap.String(text, c.Width)
	}
	c.printLine(text)
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}

func titleOf(w *world.World) string {
	if w.Title != "" {
		return w.Title
	}
	return "Bem-vindo à Aventura!"
}
