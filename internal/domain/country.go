package domain

// Country is reference data: ISO 3166-1 alpha-2 code plus display name.
// The API exposes it read-only; rows are seeded out of band.
type Country struct {
	CountryID string `json:"id" dynamodbav:"country_id"`
	Code      string `json:"code" dynamodbav:"code"`
	Name      string `json:"name" dynamodbav:"name"`
}
