package domain

type Manufacturer struct {
	ManufacturerID string `json:"id" dynamodbav:"manufacturer_id"`
	Name           string `json:"name" dynamodbav:"name"`
}

type ManufacturerInput struct {
	Name string `json:"name" validate:"required,min=3"`
}
