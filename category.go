package finanza

// CategoryKind tells whether a category classifies income or expenses.
type CategoryKind string

const (
	IncomeCategory  CategoryKind = "INCOME"
	ExpenseCategory CategoryKind = "EXPENSE"
)

// Category labels a transaction for display and aggregation. The engine does
// not require a category to exist in the directory: an unknown categoryId
// affects display only, never ledger correctness.
type Category struct {
	ID       string
	Name     string
	Icon     string
	Kind     CategoryKind
	IsCustom bool
}

// debtCategoryID is the built-in category used for debt payment and
// collection mirror transactions.
const debtCategoryID = "10"

// DefaultCategories returns the directory seeded for new users.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Comida", Icon: "🍔", Kind: ExpenseCategory},
		{ID: "2", Name: "Transporte", Icon: "🚌", Kind: ExpenseCategory},
		{ID: "3", Name: "Vivienda", Icon: "🏠", Kind: ExpenseCategory},
		{ID: "4", Name: "Salud", Icon: "💊", Kind: ExpenseCategory},
		{ID: "5", Name: "Entretenimiento", Icon: "🎬", Kind: ExpenseCategory},
		{ID: "6", Name: "Salario", Icon: "💰", Kind: IncomeCategory},
		{ID: "7", Name: "Negocio", Icon: "💼", Kind: IncomeCategory},
		{ID: "8", Name: "Freelance", Icon: "💻", Kind: IncomeCategory},
		{ID: "9", Name: "Ahorro", Icon: "🐷", Kind: ExpenseCategory},
		{ID: debtCategoryID, Name: "Deudas", Icon: "🤝", Kind: ExpenseCategory},
	}
}

// MarshalJSON implements the json.Marshaler interface with a canonical key order.
func (c Category) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Append("icon", c.Icon)
	w.Append("type", c.Kind)
	w.Optional("isCustom", c.IsCustom)
	return w.MarshalJSON()
}

// jcategory is a specialized struct for decoding json.
type jcategory struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Icon     string       `json:"icon"`
	Kind     CategoryKind `json:"type"`
	IsCustom bool         `json:"isCustom"`
}

func (j jcategory) Category() Category {
	return Category{ID: j.ID, Name: j.Name, Icon: j.Icon, Kind: j.Kind, IsCustom: j.IsCustom}
}
