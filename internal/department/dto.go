package department

import "gorm.io/datatypes"

type CreateDepartmentDTO struct {
	Name string `json:"name" validate:"required"`
}

type UpdateDepartmentDTO struct {
	Name   *string           `json:"name"`
	Status *DepartmentStatus `json:"status"`
}

type PutPerformanceConfigDTO struct {
	Thresholds datatypes.JSON `json:"thresholds" validate:"required"`
}
