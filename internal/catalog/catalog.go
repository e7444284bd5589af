// Package catalog holds the static country list the game is played against.
// Names are the canonical Portuguese display forms; codes are lowercase
// ISO 3166-1 alpha-2.
package catalog

import (
	"unicode"
	"unicode/utf8"

	"country-guess/internal/model"
)

type entry struct {
	name string
	code string
}

var countries = []entry{
	{"Afeganistão", "af"},
	{"África do Sul", "za"},
	{"Albânia", "al"},
	{"Alemanha", "de"},
	{"Andorra", "ad"},
	{"Angola", "ao"},
	{"Antígua e Barbuda", "ag"},
	{"Arábia Saudita", "sa"},
	{"Argélia", "dz"},
	{"Argentina", "ar"},
	{"Armênia", "am"},
	{"Austrália", "au"},
	{"Áustria", "at"},
	{"Azerbaijão", "az"},
	{"Bahamas", "bs"},
	{"Bahrein", "bh"},
	{"Bangladesh", "bd"},
	{"Barbados", "bb"},
	{"Bélgica", "be"},
	{"Belize", "bz"},
	{"Benin", "bj"},
	{"Bielorrússia", "by"},
	{"Bolívia", "bo"},
	{"Bósnia e Herzegovina", "ba"},
	{"Botsuana", "bw"},
	{"Brasil", "br"},
	{"Brunei", "bn"},
	{"Bulgária", "bg"},
	{"Burkina Faso", "bf"},
	{"Burundi", "bi"},
	{"Butão", "bt"},
	{"Cabo Verde", "cv"},
	{"Camarões", "cm"},
	{"Camboja", "kh"},
	{"Canadá", "ca"},
	{"Catar", "qa"},
	{"Cazaquistão", "kz"},
	{"Chade", "td"},
	{"Chile", "cl"},
	{"China", "cn"},
	{"Chipre", "cy"},
	{"Colômbia", "co"},
	{"Comores", "km"},
	{"Congo", "cg"},
	{"Coreia do Norte", "kp"},
	{"Coreia do Sul", "kr"},
	{"Costa do Marfim", "ci"},
	{"Costa Rica", "cr"},
	{"Croácia", "hr"},
	{"Cuba", "cu"},
	{"Dinamarca", "dk"},
	{"Djibuti", "dj"},
	{"Dominica", "dm"},
	{"Egito", "eg"},
	{"El Salvador", "sv"},
	{"Emirados Árabes Unidos", "ae"},
	{"Equador", "ec"},
	{"Eritreia", "er"},
	{"Eslováquia", "sk"},
	{"Eslovênia", "si"},
	{"Espanha", "es"},
	{"Essuatíni", "sz"},
	{"Estados Unidos", "us"},
	{"Estônia", "ee"},
	{"Etiópia", "et"},
	{"Fiji", "fj"},
	{"Filipinas", "ph"},
	{"Finlândia", "fi"},
	{"França", "fr"},
	{"Gabão", "ga"},
	{"Gâmbia", "gm"},
	{"Gana", "gh"},
	{"Geórgia", "ge"},
	{"Granada", "gd"},
	{"Grécia", "gr"},
	{"Guatemala", "gt"},
	{"Guiana", "gy"},
	{"Guiné", "gn"},
	{"Guiné Equatorial", "gq"},
	{"Guiné-Bissau", "gw"},
	{"Haiti", "ht"},
	{"Honduras", "hn"},
	{"Hungria", "hu"},
	{"Iêmen", "ye"},
	{"Ilhas Marshall", "mh"},
	{"Ilhas Salomão", "sb"},
	{"Índia", "in"},
	{"Indonésia", "id"},
	{"Irã", "ir"},
	{"Iraque", "iq"},
	{"Irlanda", "ie"},
	{"Islândia", "is"},
	{"Israel", "il"},
	{"Itália", "it"},
	{"Jamaica", "jm"},
	{"Japão", "jp"},
	{"Jordânia", "jo"},
	{"Kiribati", "ki"},
	{"Kuwait", "kw"},
	{"Laos", "la"},
	{"Lesoto", "ls"},
	{"Letônia", "lv"},
	{"Líbano", "lb"},
	{"Libéria", "lr"},
	{"Líbia", "ly"},
	{"Liechtenstein", "li"},
	{"Lituânia", "lt"},
	{"Luxemburgo", "lu"},
	{"Macedônia do Norte", "mk"},
	{"Madagascar", "mg"},
	{"Malásia", "my"},
	{"Malawi", "mw"},
	{"Maldivas", "mv"},
	{"Mali", "ml"},
	{"Malta", "mt"},
	{"Marrocos", "ma"},
	{"Maurício", "mu"},
	{"Mauritânia", "mr"},
	{"México", "mx"},
	{"Mianmar", "mm"},
	{"Micronésia", "fm"},
	{"Moçambique", "mz"},
	{"Moldávia", "md"},
	{"Mônaco", "mc"},
	{"Mongólia", "mn"},
	{"Montenegro", "me"},
	{"Namíbia", "na"},
	{"Nauru", "nr"},
	{"Nepal", "np"},
	{"Nicarágua", "ni"},
	{"Níger", "ne"},
	{"Nigéria", "ng"},
	{"Noruega", "no"},
	{"Nova Zelândia", "nz"},
	{"Omã", "om"},
	{"Países Baixos", "nl"},
	{"Palau", "pw"},
	{"Panamá", "pa"},
	{"Papua-Nova Guiné", "pg"},
	{"Paquistão", "pk"},
	{"Paraguai", "py"},
	{"Peru", "pe"},
	{"Polônia", "pl"},
	{"Portugal", "pt"},
	{"Quênia", "ke"},
	{"Quirguistão", "kg"},
	{"Reino Unido", "gb"},
	{"República Centro-Africana", "cf"},
	{"República Tcheca", "cz"},
	{"República Democrática do Congo", "cd"},
	{"República Dominicana", "do"},
	{"Romênia", "ro"},
	{"Ruanda", "rw"},
	{"Rússia", "ru"},
	{"Samoa", "ws"},
	{"Santa Lúcia", "lc"},
	{"São Cristóvão e Nevis", "kn"},
	{"São Marinho", "sm"},
	{"São Tomé e Príncipe", "st"},
	{"São Vicente e Granadinas", "vc"},
	{"Senegal", "sn"},
	{"Sérvia", "rs"},
	{"Serra Leoa", "sl"},
	{"Seychelles", "sc"},
	{"Singapura", "sg"},
	{"Síria", "sy"},
	{"Somália", "so"},
	{"Sri Lanka", "lk"},
	{"Sudão", "sd"},
	{"Sudão do Sul", "ss"},
	{"Suécia", "se"},
	{"Suíça", "ch"},
	{"Suriname", "sr"},
	{"Tailândia", "th"},
	{"Taiwan", "tw"},
	{"Tadjiquistão", "tj"},
	{"Tanzânia", "tz"},
	{"Timor-Leste", "tl"},
	{"Togo", "tg"},
	{"Tonga", "to"},
	{"Trinidad e Tobago", "tt"},
	{"Tunísia", "tn"},
	{"Turcomenistão", "tm"},
	{"Turquia", "tr"},
	{"Tuvalu", "tv"},
	{"Ucrânia", "ua"},
	{"Uganda", "ug"},
	{"Uruguai", "uy"},
	{"Uzbequistão", "uz"},
	{"Vanuatu", "vu"},
	{"Vaticano", "va"},
	{"Venezuela", "ve"},
	{"Vietnã", "vn"},
	{"Zâmbia", "zm"},
	{"Zimbábue", "zw"},
}

// Membership lists decide the difficulty tier; anything not listed is hard.
var easyCountries = []string{
	"Brasil",
	"Estados Unidos",
	"Argentina",
	"Portugal",
	"Espanha",
	"França",
	"Alemanha",
	"Itália",
	"Japão",
	"China",
	"Canadá",
	"México",
	"Reino Unido",
}

var mediumCountries = []string{
	"Chile",
	"Colômbia",
	"Peru",
	"Uruguai",
	"Paraguai",
	"Venezuela",
	"África do Sul",
	"Austrália",
	"Nova Zelândia",
	"Índia",
	"Rússia",
	"Egito",
	"Nigéria",
	"Suécia",
	"Noruega",
	"Finlândia",
	"Dinamarca",
	"Países Baixos",
	"Bélgica",
	"Suíça",
	"Áustria",
	"Grécia",
	"Turquia",
	"Arábia Saudita",
	"Emirados Árabes Unidos",
	"Israel",
	"Coreia do Sul",
	"Tailândia",
	"Vietnã",
	"Indonésia",
}

// Countries expands the static list into catalog rows with the derived
// initial letter (uppercase first rune of the name) and the difficulty
// assigned from the membership lists.
func Countries() []model.Country {
	easy := toSet(easyCountries)
	medium := toSet(mediumCountries)

	rows := make([]model.Country, 0, len(countries))
	for _, e := range countries {
		difficulty := model.DifficultyHard
		if easy[e.name] {
			difficulty = model.DifficultyEasy
		} else if medium[e.name] {
			difficulty = model.DifficultyMedium
		}

		rows = append(rows, model.Country{
			Name:          e.name,
			InitialLetter: initialLetter(e.name),
			FlagCode:      e.code,
			Difficulty:    difficulty,
		})
	}
	return rows
}

// initialLetter returns the uppercase first rune of name, accents kept.
func initialLetter(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
