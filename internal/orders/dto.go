package orders

type UpdateStatusInput struct {
	Status     string `json:"status" validate:"required"`
	AdminNotes string `json:"admin_notes" validate:"max=2000"`
}
