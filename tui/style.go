package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleActionsBar = lipgloss.NewStyle().
			Background(lipgloss.Color("234")).
			Foreground(lipgloss.Color("245"))

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	stylePlaceDesc = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleHeading = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	styleYouSee = lipgloss.NewStyle().
			Bold(true)

	styleExits = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleTrace = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindPlaceDesc lineKind = iota
	kindHeading
	kindYouSee
	kindExits
	kindDialogue
	kindSuccess
	kindSystem
	kindError
	kindTrace
)

// Prefixes of listing lines whose tail is a list of names.
var listPrefixes = []string{"Você vê aqui: ", "Personagens aqui: "}

const exitsPrefix = "Você pode ir para: "

var errorPrefixes = []string{
	"Não há ",
	"Não é possível",
	"Você não ",
	"Erro:",
	"Comando não reconhecido",
	"Este item não pode",
	"Qual ",
}

var successPrefixes = []string{
	"Você pegou ",
	"Você largou ",
	"Você foi para ",
	"Você brande ",
	"Você equipa ",
	"Você usa ",
	"Você bebe ",
}

// classifyLine determines what kind of output line this is. speakers are
// the NPC names whose "Name: line" output counts as dialogue.
func classifyLine(line string, speakers []string) lineKind {
	switch {
	case strings.HasPrefix(line, "[trace]"):
		return kindTrace
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(line, "== ") && strings.HasSuffix(line, " =="):
		return kindHeading
	case hasAnyPrefix(line, listPrefixes):
		return kindYouSee
	case strings.HasPrefix(line, exitsPrefix):
		return kindExits
	case hasAnyPrefix(line, errorPrefixes):
		return kindError
	case hasAnyPrefix(line, successPrefixes):
		return kindSuccess
	case isSpeech(line, speakers):
		return kindDialogue
	default:
		return kindPlaceDesc
	}
}

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// isSpeech checks for "Speaker: text" with a known speaker.
func isSpeech(line string, speakers []string) bool {
	for _, s := range speakers {
		if strings.HasPrefix(line, s+": ") {
			return true
		}
	}
	return false
}

// styledYouSee renders "Você vê aqui: a, b." with the names bold.
func styledYouSee(line string) string {
	for _, prefix := range listPrefixes {
		if strings.HasPrefix(line, prefix) {
			return stylePlaceDesc.Render(prefix) + styleYouSee.Render(line[len(prefix):])
		}
	}
	return stylePlaceDesc.Render(line)
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
