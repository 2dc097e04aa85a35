package lexicon

// Positive is the emotion category that feeds the positivity score.
const Positive = "positivo"

// Lexicon holds the fixed keyword tables used for classification. It is
// built once and treated as read-only afterwards, so a single instance is
// safe to share across goroutines.
type Lexicon struct {
	Emotions map[string][]string
	Future   []string
	Night    []string
	Negative []string
}

func Default() *Lexicon {
	return &Lexicon{
		Emotions: map[string][]string{
			Positive:     {"feliz", "alegre", "esperança", "amor", "paz", "luz", "voar", "liberdade"},
			"nostalgico": {"passado", "infância", "memória", "saudade", "tempo", "antigo"},
			"misterioso": {"escuro", "sombra", "desconhecido", "estranho", "mágico", "surreal"},
			"ansioso":    {"correr", "perseguir", "perder", "cair", "medo", "pressa", "fugir"},
		},
		Future:   []string{"futuro", "amanhã", "próximo", "espero", "quero", "desejo", "planejo", "imagino"},
		Night:    []string{"dormir", "pesadelo", "acordei", "noite", "cama"},
		Negative: []string{"não", "nunca", "impossível", "difícil", "problema", "medo"},
	}
}
