package engine

import "github.com/nathoo/aventura/types"

// AvailableActions lists what the player can do right now, grouped by
// section. Empty sections are omitted.
func (e *Engine) AvailableActions() []types.ActionGroup {
	groups := []types.ActionGroup{{
		Title: "AÇÕES DISPONÍVEIS",
		Actions: []string{
			"olhar: Ver descrição do local",
			"inventario (ou i): Ver seus itens",
			"status: Ver seu status",
			"ajuda: Ver todos os comandos",
			"sair: Encerrar o jogo",
		},
	}}

	if names := e.Current.ItemNames(); len(names) > 0 {
		groups = append(groups, types.ActionGroup{
			Title:   "ITENS QUE VOCÊ PODE PEGAR",
			Actions: prefixed("pegar ", names),
		})
	}

	if names := e.Player.ItemNames(); len(names) > 0 {
		acts := prefixed("usar ", names)
		acts = append(acts, prefixed("largar ", names)...)
		groups = append(groups, types.ActionGroup{
			Title:   "ITENS NO SEU INVENTÁRIO",
			Actions: acts,
		})
	}

	if names := e.Current.CharacterNames(); len(names) > 0 {
		groups = append(groups, types.ActionGroup{
			Title:   "PERSONAGENS COM QUEM VOCÊ PODE FALAR",
			Actions: prefixed("falar com ", names),
		})
	}

	if len(e.Current.TakesTo) > 0 {
		groups = append(groups, types.ActionGroup{
			Title:   "LUGARES PARA ONDE VOCÊ PODE IR",
			Actions: prefixed("ir para ", e.Current.TakesTo),
		})
	}

	return groups
}

// HelpText returns the command reference shown by "ajuda".
func HelpText() []string {
	return []string{
		"== AJUDA - COMANDOS DISPONÍVEIS ==",
		"- olhar: Mostra a descrição detalhada do local atual",
		"- inventario (ou i): Mostra seus itens",
		"- pegar <item>: Pega um item do local",
		"- largar <item>: Larga um item do seu inventário",
		"- usar <item>: Usa um item do seu inventário",
		"- examinar <item>: Examina um item de perto",
		"- falar com <personagem>: Fala com um personagem",
		"- ir para <lugar>: Move para outro lugar",
		"- status: Mostra seu status atual",
		"- ajuda: Mostra esta mensagem",
		"- sair: Encerra o jogo",
	}
}

func prefixed(prefix string, names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = prefix + n
	}
	return out
}
