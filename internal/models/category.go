package models

// CategoryAll is the filter sentinel that matches every category.
const CategoryAll = "TODOS"

// MasterCategories is the fixed set of editorial tags. The first entry is the
// editor's default selection.
var MasterCategories = []string{
	"ESTRATÉGIA", "MARKETING", "VENDAS", "IA & TECH", "FINANÇAS",
	"AGRONEGÓCIO", "ARQUITETURA", "AUTOMOTIVO", "BELEZA", "CIÊNCIA",
	"DESIGN", "EDUCAÇÃO", "ENGENHARIA", "ESPORTES", "GAMING",
	"GASTRONOMIA", "IMOBILIÁRIO", "JURÍDICO", "LOGÍSTICA",
	"MODA & ESTILO", "MÚSICA", "SAÚDE & MED", "TURISMO",
}

// FilterCategories returns the category bar entries: the ALL sentinel followed
// by every master category.
func FilterCategories() []string {
	out := make([]string, 0, len(MasterCategories)+1)
	out = append(out, CategoryAll)
	out = append(out, MasterCategories...)
	return out
}

// IsMasterCategory reports whether tag is one of the fixed editorial tags.
func IsMasterCategory(tag string) bool {
	for _, c := range MasterCategories {
		if c == tag {
			return true
		}
	}
	return false
}
