package domain

import "github.com/SscSPs/greenhouse_ledger/internal/apperrors"

// ExpenseCategory is a user managed expense category.
type ExpenseCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// IsFoundational marks capital-like costs that do not count as treasury cash outflow.
	IsFoundational bool `json:"isFoundational"`
}

// Settings holds the feature toggles and category configuration of the installation.
type Settings struct {
	FarmerSystemEnabled   bool              `json:"isFarmerSystemEnabled" db:"farmer_system_enabled"`
	SupplierSystemEnabled bool              `json:"isSupplierSystemEnabled" db:"supplier_system_enabled"`
	ProgramsEnabled       bool              `json:"isProgramsEnabled" db:"programs_enabled"`
	TreasuryEnabled       bool              `json:"isTreasuryEnabled" db:"treasury_enabled"`
	AdvancesEnabled       bool              `json:"isAdvancesEnabled" db:"advances_enabled"`
	Theme                 string            `json:"theme" db:"theme"`
	ExpenseCategories     []ExpenseCategory `json:"expenseCategories" db:"expense_categories"`
}

// DefaultSettings returns the settings used before the owner saves any.
func DefaultSettings() Settings {
	return Settings{
		FarmerSystemEnabled:   true,
		SupplierSystemEnabled: true,
		ProgramsEnabled:       true,
		TreasuryEnabled:       true,
		AdvancesEnabled:       true,
		Theme:                 "light",
		ExpenseCategories: []ExpenseCategory{
			{ID: "seeds", Name: "Seeds", IsFoundational: true},
			{ID: "fertilizers", Name: "Fertilizers"},
			{ID: "pesticides", Name: "Pesticides"},
			{ID: "labor", Name: "Labor"},
			{ID: "transport", Name: "Transport"},
			{ID: "other", Name: "Other"},
		},
	}
}

// FoundationalCategories builds the lookup set of foundational category names.
func (s Settings) FoundationalCategories() map[string]struct{} {
	set := make(map[string]struct{}, len(s.ExpenseCategories))
	for _, c := range s.ExpenseCategories {
		if c.IsFoundational {
			set[c.Name] = struct{}{}
		}
	}
	return set
}

// Validate checks that category names are present and unique.
func (s Settings) Validate() error {
	seen := make(map[string]struct{}, len(s.ExpenseCategories))
	for _, c := range s.ExpenseCategories {
		if c.Name == "" {
			return apperrors.NewValidationFailedError("expense category name is required")
		}
		if _, dup := seen[c.Name]; dup {
			return apperrors.NewValidationFailedError("duplicate expense category " + c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}
