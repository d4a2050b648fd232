// Package engine provides the Step() interpreter that turns one command line
// into state mutations on the world and player plus narration.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/nathoo/aventura/engine/entity"
	"github.com/nathoo/aventura/engine/events"
	"github.com/nathoo/aventura/engine/parser"
	"github.com/nathoo/aventura/engine/player"
	"github.com/nathoo/aventura/engine/resolve"
	"github.com/nathoo/aventura/engine/world"
	"github.com/nathoo/aventura/logger"
	"github.com/nathoo/aventura/types"
)

var (
	ErrUnknownStart    = errors.New("unknown start place")
	ErrEmptyPlayerName = errors.New("player name must not be empty")
)

// Farewell is the last line of a session ended with "sair".
const Farewell = "Obrigado por jogar! Até a próxima aventura!"

// Event types emitted by Step.
const (
	EventItemTaken   = "item_taken"
	EventItemDropped = "item_dropped"
	EventItemUsed    = "item_used"
	EventPlayerMoved = "player_moved"
	EventNPCSpoke    = "npc_spoke"
)

// Engine owns the state of one session. Nothing here is shared between
// engines, so independent sessions never interfere.
type Engine struct {
	ID        uuid.UUID
	World     *world.World
	Player    *player.Player
	Current   *entity.Place
	TurnCount int

	// Events observes every event emitted by Step.
	Events *events.Dispatcher

	log *slog.Logger
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	start string
	log   *slog.Logger
}

// WithStart overrides the world's start place.
func WithStart(name string) Option {
	return func(c *engineConfig) { c.start = name }
}

// WithLogger sets the logger. The session ID is attached to it.
func WithLogger(l *slog.Logger) Option {
	return func(c *engineConfig) { c.log = l }
}

// New creates a session for the named player at the start place.
func New(w *world.World, playerName string, opts ...Option) (*Engine, error) {
	cfg := engineConfig{start: w.Start, log: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	start, ok := w.Place(cfg.start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStart, cfg.start)
	}

	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, ErrEmptyPlayerName
	}
	p, err := player.New(playerName, start.Name)
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}

	id := uuid.New()
	e := &Engine{
		ID:      id,
		World:   w,
		Player:  p,
		Current: start,
		Events:  events.NewDispatcher(),
		log:     logger.WithSession(cfg.log, id.String()),
	}
	e.Events.On(events.Any, func(evt types.Event) {
		e.log.Debug("event", "type", evt.Type, "data", evt.Data)
	})
	e.log.Info("session started", "player", p.Name, "start", start.Name)
	return e, nil
}

// Step processes one player command and returns the result.
func (e *Engine) Step(input string) types.Result {
	result := types.Result{Continue: true}

	intent := parser.Parse(input)
	if intent.Verb == "" {
		result.Output = append(result.Output, "O que você quer fazer?")
		return result
	}

	e.TurnCount++
	e.log.Debug("command", "verb", intent.Verb, "object", intent.Object, "turn", e.TurnCount)

	if parser.TakesObject(intent.Verb) && intent.Object == "" {
		result.Output = append(result.Output, missingObject(intent.Verb))
		return result
	}

	var out []string
	var evt *types.Event

	switch intent.Verb {
	case parser.VerbQuit:
		result.Continue = false
		out = []string{Farewell}
	case parser.VerbHelp:
		out = HelpText()
	case parser.VerbLook:
		out = e.Describe()
	case parser.VerbInventory:
		out = splitLines(e.Player.Inventory())
	case parser.VerbStatus:
		out = splitLines(e.Player.Status())
	case parser.VerbTake:
		out, evt = e.take(intent.Object)
	case parser.VerbDrop:
		out, evt = e.drop(intent.Object)
	case parser.VerbUse:
		out, evt = e.use(intent.Object)
	case parser.VerbTalk:
		out, evt = e.talk(intent.Object)
	case parser.VerbGo:
		out, evt = e.move(intent.Object)
	case parser.VerbExamine:
		out = e.examine(intent.Object)
	default:
		out = []string{"Comando não reconhecido. Digite 'ajuda' para ver os comandos disponíveis."}
	}

	result.Output = append(result.Output, out...)
	if evt != nil {
		result.Events = append(result.Events, *evt)
		e.Events.Dispatch(result.Events)
	}
	return result
}

// Describe renders the current place.
func (e *Engine) Describe() []string {
	return e.Current.FullDescription()
}

func (e *Engine) take(name string) ([]string, *types.Event) {
	canonical, err := resolve.Name(name, e.Current.ItemNames())
	if err != nil {
		return e.unresolved(err, fmt.Sprintf("Não há %s aqui.", name)), nil
	}
	it, _ := e.Current.Item(canonical)
	text, ok := e.Player.PickUp(it)
	if !ok {
		return []string{text}, nil
	}
	e.Current.RemoveItem(canonical)
	return []string{text}, event(EventItemTaken, "item", canonical, "place", e.Current.Name)
}

func (e *Engine) drop(name string) ([]string, *types.Event) {
	canonical, err := resolve.Name(name, e.Player.ItemNames())
	if err != nil {
		return e.unresolved(err, fmt.Sprintf("Você não está carregando %s.", name)), nil
	}
	it, text, ok := e.Player.Drop(canonical)
	if !ok {
		return []string{text}, nil
	}
	e.Current.AddItem(it)
	return []string{text}, event(EventItemDropped, "item", canonical, "place", e.Current.Name)
}

func (e *Engine) use(name string) ([]string, *types.Event) {
	canonical, err := resolve.Name(name, e.Player.ItemNames())
	if err != nil {
		return e.unresolved(err, fmt.Sprintf("Você não está carregando %s.", name)), nil
	}
	text, ok := e.Player.Use(canonical)
	if !ok {
		return []string{text}, nil
	}
	return []string{text}, event(EventItemUsed, "item", canonical, "health", e.Player.Health)
}

func (e *Engine) talk(name string) ([]string, *types.Event) {
	canonical, err := resolve.Name(name, e.Current.CharacterNames())
	if err != nil {
		return e.unresolved(err, fmt.Sprintf("Não há %s aqui.", name)), nil
	}
	npc, _ := e.Current.Character(canonical)
	line := npc.Speak()
	return []string{fmt.Sprintf("%s: %s", npc.Name, line)}, event(EventNPCSpoke, "npc", npc.Name)
}

func (e *Engine) move(name string) ([]string, *types.Event) {
	canonical, err := resolve.Name(name, e.Current.TakesTo)
	if err != nil {
		return e.unresolved(err, fmt.Sprintf("Você não pode ir para %s a partir daqui.", name)), nil
	}
	dest, ok := e.World.Place(canonical)
	if !ok {
		return []string{fmt.Sprintf("Erro: Local %s não encontrado.", canonical)}, nil
	}
	from := e.Current.Name
	e.Current = dest
	e.Player.Location = dest.Name

	out := []string{fmt.Sprintf("Você foi para %s.", dest.Name)}
	out = append(out, e.Describe()...)
	return out, event(EventPlayerMoved, "from", from, "to", dest.Name)
}

func (e *Engine) examine(name string) []string {
	if canonical, err := resolve.Name(name, e.Player.ItemNames()); err == nil {
		it, _ := e.Player.Item(canonical)
		return []string{it.Examine()}
	}
	canonical, err := resolve.Name(name, e.Current.ItemNames())
	if err != nil {
		return e.unresolved(err, fmt.Sprintf("Não há %s aqui.", name))
	}
	it, _ := e.Current.Item(canonical)
	return []string{it.Examine()}
}

// unresolved turns a resolution error into narration.
func (e *Engine) unresolved(err error, notFound string) []string {
	var amb *resolve.AmbiguityError
	if errors.As(err, &amb) {
		return []string{capitalize(amb.Error())}
	}
	return []string{notFound}
}

func missingObject(verb string) string {
	switch verb {
	case parser.VerbTake:
		return "Pegar o quê?"
	case parser.VerbDrop:
		return "Largar o quê?"
	case parser.VerbUse:
		return "Usar o quê?"
	case parser.VerbTalk:
		return "Falar com quem?"
	case parser.VerbGo:
		return "Ir para onde?"
	default:
		return "Examinar o quê?"
	}
}

func event(typ string, kv ...any) *types.Event {
	data := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		data[kv[i].(string)] = kv[i+1]
	}
	return &types.Event{Type: typ, Data: data}
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
