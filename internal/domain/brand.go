package domain

type Brand struct {
	BrandID string `json:"id" dynamodbav:"brand_id"`
	Name    string `json:"name" dynamodbav:"name"`
}

type BrandInput struct {
	Name string `json:"name" validate:"required"`
}
