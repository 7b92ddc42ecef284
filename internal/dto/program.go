package dto

// ProgramRequest is the body of fertilization program create and update calls.
type ProgramRequest struct {
	Name        string `json:"name" binding:"required"`
	StartDate   string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" binding:"required,datetime=2006-01-02"`
	CropCycleID string `json:"cropCycleID" binding:"required"`
}
