package dto

// ExpenseCategoryRequest is one entry of the expense category list. A missing ID is generated.
type ExpenseCategoryRequest struct {
	ID             string `json:"id"`
	Name           string `json:"name" binding:"required"`
	IsFoundational bool   `json:"isFoundational"`
}

// UpdateSettingsRequest replaces the settings document.
type UpdateSettingsRequest struct {
	FarmerSystemEnabled   bool                     `json:"isFarmerSystemEnabled"`
	SupplierSystemEnabled bool                     `json:"isSupplierSystemEnabled"`
	ProgramsEnabled       bool                     `json:"isProgramsEnabled"`
	TreasuryEnabled       bool                     `json:"isTreasuryEnabled"`
	AdvancesEnabled       bool                     `json:"isAdvancesEnabled"`
	Theme                 string                   `json:"theme" binding:"omitempty,oneof=light dark"`
	ExpenseCategories     []ExpenseCategoryRequest `json:"expenseCategories" binding:"dive"`
}
