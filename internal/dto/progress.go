package dto

// UpdateIsCorrectRequest is the body of PUT /api/UserTestProgress/UpdateIsCorrect/{id}
// @Description Correctness outcome of one test item
type UpdateIsCorrectRequest struct {
	IsCorrect bool `json:"isCorrect" example:"true"`
}

// UpdateTestResponse is returned for both success and not-found outcomes.
// @Description Result of a test progress update
type UpdateTestResponse struct {
	Success  bool   `json:"success" example:"true"`
	LevelUp  bool   `json:"levelUp" example:"true"`
	NewLevel *int   `json:"newLevel" example:"3"`
	Message  string `json:"message" example:"Congratulations! Level up!"`
}

// HealthResponse reports dependency reachability.
type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks"`
}

const (
	MessageLevelUp     = "Congratulations! Level up!"
	MessageTestUpdated = "Test updated successfully"
)
