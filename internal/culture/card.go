// Package culture holds the "Cultura Viva" fact sheets: one short cultural
// card per trail place, with its main festivity, season, key Aymara words,
// and a short explanation.
package culture

// Word is one key word or expression with its Spanish meaning.
type Word struct {
	Aymara  string
	Meaning string
}

// Card is the cultural fact sheet for one place on the trail.
type Card struct {
	Place     string
	Festivity string
	Season    string
	Words     []Word
	Text      string
}

// cards indexes fact sheets by place name.
var cards = map[string]Card{
	"Ilave": {
		Place:     "Ilave",
		Festivity: "Anata Andina",
		Season:    "Febrero – marzo",
		Words: []Word{
			{Aymara: "Anata", Meaning: "fiesta"},
			{Aymara: "Jiwasa", Meaning: "nosotros"},
			{Aymara: "Kusisiña", Meaning: "alegría"},
		},
		Text: "La Anata Andina es una celebración comunitaria donde la música, la danza y la reciprocidad fortalecen la identidad aymara.",
	},
	"Desaguadero": {
		Place:     "Desaguadero",
		Festivity: "Feria binacional",
		Season:    "Todo el año (martes y viernes)",
		Words: []Word{
			{Aymara: "Qhathu", Meaning: "feria, mercado"},
			{Aymara: "Chaka", Meaning: "puente"},
			{Aymara: "Aljaña", Meaning: "vender"},
		},
		Text: "En el puente entre Perú y Bolivia, la feria de Desaguadero reúne a comerciantes aymaras de ambas orillas del río.",
	},
	"Pomata": {
		Place:     "Pomata",
		Festivity: "Fiesta de San Santiago",
		Season:    "Julio",
		Words: []Word{
			{Aymara: "Qala", Meaning: "piedra"},
			{Aymara: "Iglisya", Meaning: "iglesia"},
			{Aymara: "Titi", Meaning: "gato montés"},
		},
		Text: "Pomata, el balcón filosófico del altiplano, celebra con danzas frente a su templo de granito rosado.",
	},
	"Juli": {
		Place:     "Juli",
		Festivity: "Fiesta de la Cruz",
		Season:    "Mayo",
		Words: []Word{
			{Aymara: "Kurusa", Meaning: "cruz"},
			{Aymara: "Quta", Meaning: "lago"},
			{Aymara: "Thaki", Meaning: "camino"},
		},
		Text: "La pequeña Roma de América mira al lago Titicaca; sus cuatro templos coloniales guardan siglos de historia aymara.",
	},
}

// ForPlace returns the fact sheet for a place, if one exists.
func ForPlace(place string) (Card, bool) {
	c, ok := cards[place]
	return c, ok
}

// Places returns the places that have a fact sheet.
func Places() []string {
	names := make([]string, 0, len(cards))
	for name := range cards {
		names = append(names, name)
	}
	return names
}
