package dto

// CategoryListQuery binds GET /categories query parameters.
type CategoryListQuery struct {
	Type string `validate:"omitempty,max=64"`
}
