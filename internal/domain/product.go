package domain

// Volume unit kinds accepted for a product.
const (
	VolumeItems = "items"
	VolumeGram  = "g"
	VolumeKilo  = "kg"
	VolumeLiter = "l"
)

type Product struct {
	ProductID   string `json:"id" dynamodbav:"product_id"`
	Name        string `json:"name" dynamodbav:"name"`
	Description string `json:"description" dynamodbav:"description"`

	Price         float64 `json:"price" dynamodbav:"price"`
	OriginalPrice float64 `json:"original_price" dynamodbav:"original_price"`
	Discount      float64 `json:"discount" dynamodbav:"discount"`

	Stock    float64 `json:"stock" dynamodbav:"stock"`
	IsActive bool    `json:"is_active" dynamodbav:"is_active"`

	Volume     float64 `json:"volume" dynamodbav:"volume"`
	VolumeType string  `json:"volume_type" dynamodbav:"volume_type"`

	CategoryID     string  `json:"category_id" dynamodbav:"category_id"`
	CountryID      string  `json:"country_id" dynamodbav:"country_id"`
	BrandID        *string `json:"brand_id" dynamodbav:"brand_id,omitempty"`
	ManufacturerID *string `json:"manufacturer_id" dynamodbav:"manufacturer_id,omitempty"`
}

type ProductInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`

	Price         float64 `json:"price" validate:"required,gt=0"`
	OriginalPrice float64 `json:"original_price" validate:"required,gt=0"`
	Discount      float64 `json:"discount" validate:"gte=0"`

	Stock    float64 `json:"stock" validate:"gte=0"`
	IsActive bool    `json:"is_active"`

	Volume     float64 `json:"volume" validate:"required,gt=0"`
	VolumeType string  `json:"volume_type" validate:"required,oneof=items g kg l"`

	CategoryID     string  `json:"category_id" validate:"required"`
	CountryID      string  `json:"country_id" validate:"required"`
	BrandID        *string `json:"brand_id"`
	ManufacturerID *string `json:"manufacturer_id"`
}
