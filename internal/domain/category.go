package domain

// Category is a node in the self-referencing catalog tree.
//
// Child is a derived view, never persisted: reads materialize it down to a
// caller-specified depth and leave it as an empty (non-nil) list beyond that
// bound. ParentID is nil for root categories.
type Category struct {
	CategoryID string  `json:"id" dynamodbav:"category_id"`
	Name       string  `json:"name" dynamodbav:"name"`
	ParentID   *string `json:"parent_id" dynamodbav:"parent_id,omitempty"`

	Child []*Category `json:"child" dynamodbav:"-"`
}

type CreateCategoryRequest struct {
	Name     string  `json:"name" validate:"required"`
	ParentID *string `json:"parent_id"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	ParentID *string `json:"parent_id"`
}
