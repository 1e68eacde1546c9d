// Package schema defines the logical fields of a canonical record and the
// alias table that maps them onto whatever headers a given bank export uses.
package schema

import (
	"github.com/releve-dev/releve/internal/normalize"
)

// Field is a logical column of the canonical schema.
type Field string

const (
	BookingDate   Field = "booking_date"
	ShortLabel    Field = "short_label"
	FullLabel     Field = "full_label"
	Reference     Field = "reference"
	ExtraInfo     Field = "extra_info"
	OperationType Field = "operation_type"
	Category      Field = "category"
	Subcategory   Field = "subcategory"
	Debit         Field = "debit"
	Credit        Field = "credit"
	Amount        Field = "amount"
)

// Fields lists every logical field in canonical column order. Amount is
// last: it is an input-only field, merged into Debit/Credit on ingestion.
var Fields = []Field{
	BookingDate,
	ShortLabel,
	FullLabel,
	Reference,
	ExtraInfo,
	OperationType,
	Category,
	Subcategory,
	Debit,
	Credit,
	Amount,
}

// aliases maps each logical field to the normalized header synonyms seen in
// bank exports, in priority order. The field's own name is implicitly
// accepted ahead of these, so our own export re-ingests.
var aliases = map[Field][]string{
	BookingDate:   {"date_comptabilisation", "date", "date_operation", "date_valeur", "date_de_comptabilisation"},
	ShortLabel:    {"libelle_simplifie", "libelle_simplifiee", "libelle", "intitule", "description"},
	FullLabel:     {"libelle_operation", "details", "intitule_complet"},
	Reference:     {"reference", "ref", "id_operation", "numero_operation"},
	ExtraInfo:     {"informations_complementaires", "infos", "information", "note", "memo"},
	OperationType: {"type_operation", "type", "mode", "categorie_banque"},
	Category:      {"categorie", "category"},
	Subcategory:   {"sous_categorie", "sous_categ", "subcategory"},
	Debit:         {"debit", "montant_debit", "sortie", "amount_out", "montant_negatif"},
	Credit:        {"credit", "montant_credit", "entree", "amount_in", "montant_positif"},
	Amount:        {"montant", "amount", "valeur"},
}

// Aliases returns the declared synonyms for a field, in priority order.
func Aliases(f Field) []string {
	return aliases[f]
}

// Resolve maps each logical field to the index of its column in headers.
// Headers are normalized before matching, so callers may pass them raw.
// For each field the first matching synonym wins; fields with no matching
// header are simply absent from the result.
func Resolve(headers []string) map[Field]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		tok := normalize.Token(h)
		if tok == "" {
			continue
		}
		if _, seen := index[tok]; !seen {
			index[tok] = i
		}
	}

	resolved := make(map[Field]int)
	for _, f := range Fields {
		if i, ok := index[string(f)]; ok {
			resolved[f] = i
			continue
		}
		for _, alias := range aliases[f] {
			if i, ok := index[normalize.Token(alias)]; ok {
				resolved[f] = i
				break
			}
		}
	}
	return resolved
}
