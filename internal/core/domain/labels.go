package domain

import "fmt"

// Locale selects the language of display labels. It affects presentation
// only; stored codes are the same in every locale.
type Locale string

// Supported locales.
const (
	LocaleEnglish    Locale = "en"
	LocalePortuguese Locale = "pt-BR"
)

// IsValid returns true if the locale is recognised.
func (l Locale) IsValid() bool {
	_, ok := labelTables[l]
	return ok
}

// ParseLocale converts a config value into a Locale.
func ParseLocale(s string) (Locale, error) {
	l := Locale(s)
	if !l.IsValid() {
		return "", fmt.Errorf("%w: unknown locale %q", ErrInvalidInput, s)
	}
	return l, nil
}

// Labels resolves category and status codes to display strings. Codes
// outside a table resolve to a fixed sentinel instead of failing.
type Labels struct {
	categories      map[Category]string
	statuses        map[Status]string
	unknownCategory string
	unknownStatus   string
	unknownUser     string
}

// The tables are built once and only read afterwards.
var labelTables = map[Locale]Labels{
	LocaleEnglish: {
		categories: map[Category]string{
			CategoryMaintenance:  "Maintenance",
			CategoryInstallation: "Installation",
			CategoryRepair:       "Repair",
			CategoryCleaning:     "Cleaning",
			CategoryOther:        "Other",
		},
		statuses: map[Status]string{
			StatusCancelled:  "Cancelled",
			StatusAwaiting:   "Awaiting",
			StatusInProgress: "In Progress",
			StatusFinished:   "Finished",
		},
		unknownCategory: "Unknown category",
		unknownStatus:   "Unknown status",
		unknownUser:     "Unknown user",
	},
	LocalePortuguese: {
		categories: map[Category]string{
			CategoryMaintenance:  "Manutenção",
			CategoryInstallation: "Instalação",
			CategoryRepair:       "Reparo",
			CategoryCleaning:     "Limpeza",
			CategoryOther:        "Outros",
		},
		statuses: map[Status]string{
			StatusCancelled:  "Cancelado",
			StatusAwaiting:   "Aguardando",
			StatusInProgress: "Em Progresso",
			StatusFinished:   "Finalizado",
		},
		unknownCategory: "Tipo de serviço desconhecido",
		unknownStatus:   "Status desconhecido",
		unknownUser:     "Usuário não encontrado",
	},
}

// LabelsFor returns the label tables for l, falling back to English.
func LabelsFor(l Locale) Labels {
	if t, ok := labelTables[l]; ok {
		return t
	}
	return labelTables[LocaleEnglish]
}

// DefaultLabels returns the English tables.
func DefaultLabels() Labels {
	return labelTables[LocaleEnglish]
}

// Category returns the label for c, or the unknown-category sentinel.
func (l Labels) Category(c Category) string {
	if s, ok := l.categories[c]; ok {
		return s
	}
	return l.unknownCategory
}

// Status returns the label for s, or the unknown-status sentinel.
func (l Labels) Status(s Status) string {
	if label, ok := l.statuses[s]; ok {
		return label
	}
	return l.unknownStatus
}

// UnknownUser is shown in place of a user name that no longer resolves.
func (l Labels) UnknownUser() string { return l.unknownUser }
