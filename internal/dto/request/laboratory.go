package request

type CreateLaboratoryRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Instructor  string  `json:"instructor" validate:"max=255"`
	University  string  `json:"university" validate:"max=255"`
	Course      string  `json:"course" validate:"max=255"`
	Description string  `json:"description" validate:"max=1000"`
	URL         *string `json:"url,omitempty" validate:"omitempty,max=255"`
	Visible     bool    `json:"visible"`
}

type UpdateLaboratoryRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Instructor  string  `json:"instructor" validate:"max=255"`
	University  string  `json:"university" validate:"max=255"`
	Course      string  `json:"course" validate:"max=255"`
	Description string  `json:"description" validate:"max=1000"`
	URL         *string `json:"url,omitempty" validate:"omitempty,max=255"`
	Visible     bool    `json:"visible"`
}
