package entities

// Category is reference data consumed by listings.
//
// Storage model (DynamoDB):
//   - PK: id
//   - name is unique; uniqueness is enforced by the category registry
//     (lookup before create), not by the table.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
