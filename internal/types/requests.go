package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest represents the JSON request body for POST /analyze when the
// resume is submitted as already-extracted text rather than an uploaded file.
// Exactly one of JDText and JDURL must be provided.
type AnalyzeRequest struct {
	ResumeText  string `json:"resume_text" validate:"required,min=1"`
	JDText      string `json:"jd_text,omitempty" validate:"required_without=JDURL,excluded_with=JDURL"`
	JDURL       string `json:"jd_url,omitempty" validate:"omitempty,url"`
	FresherMode bool   `json:"fresher_mode,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
