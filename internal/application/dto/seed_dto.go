package dto

// SeedResultDTO respuesta de los endpoints de seeding (solo desarrollo).
type SeedResultDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
