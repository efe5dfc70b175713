package request

type ContactRequest struct {
	Name       string `json:"name" validate:"required"`
	SRN        string `json:"srn" validate:"required"`
	Branch     string `json:"branch" validate:"required"`
	Department string `json:"department" validate:"required"`
	Query      string `json:"query" validate:"required"`
}
