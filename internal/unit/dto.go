package unit

type CreateUnitDTO struct {
	Name   string `json:"name" validate:"required"`
	Symbol string `json:"symbol"`
}

type UpdateUnitDTO struct {
	Name   *string `json:"name"`
	Symbol *string `json:"symbol"`
}
