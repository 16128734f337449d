package model

// DefaultColors maps entity labels to the CSS backgrounds used by the
// highlighted-text export.
var DefaultColors = map[string]string{
	"PERSON":      "linear-gradient(90deg, #7ee7f2, #0f62fe)",
	"ORG":         "linear-gradient(90deg, #f28c8c, #e63946)",
	"GPE":         "linear-gradient(90deg, #90be6d, #43aa8b)",
	"LOC":         "linear-gradient(90deg, #f9c74f, #f9844a)",
	"EVENT":       "linear-gradient(90deg, #f2c707, #dc9ce7)",
	"DATE":        "linear-gradient(90deg,#aa9cde,#dc9ce7)",
	"NORP":        "linear-gradient(90deg,#f8961e,#f3722c)",
	"PRODUCT":     "linear-gradient(90deg,#577590,#4d908e)",
	"WORK_OF_ART": "linear-gradient(90deg,#9d4edd,#c77dff)",
	"LANGUAGE":    "linear-gradient(90deg,#43aa8b,#90be6d)",
	"MONEY":       "linear-gradient(90deg,#f94144,#f3722c)",
	"QUANTITY":    "linear-gradient(90deg,#f8961e,#f9c74f)",
	"PERCENT":     "linear-gradient(90deg,#90be6d,#43aa8b)",
	"CARDINAL":    "linear-gradient(90deg,#577590,#4d908e)",
	"MISC":        "linear-gradient(90deg,#b5838d,#6d6875)",
}

// DefaultVocabulary lists the known labels in display order. The label
// vocabulary is open: models may emit labels outside this list and the
// filter treats unknown selected labels as matching nothing.
var DefaultVocabulary = []string{
	"PERSON",
	"ORG",
	"GPE",
	"LOC",
	"EVENT",
	"DATE",
	"NORP",
	"PRODUCT",
	"WORK_OF_ART",
	"LANGUAGE",
	"MONEY",
	"QUANTITY",
	"PERCENT",
	"CARDINAL",
	"MISC",
}
