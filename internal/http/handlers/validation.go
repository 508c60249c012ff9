package handlers

import "unicode/utf8"

// maxTermLength bounds the search term accepted from clients.
const maxTermLength = 200

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateQuantity(req QuantityRequest) []ValidationError {
	errs := []ValidationError{}
	if req.Quantity == nil {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity is required"})
	}
	return errs
}

func validateSearchTerm(req SearchTermRequest) []ValidationError {
	errs := []ValidationError{}
	if req.Term == nil {
		errs = append(errs, ValidationError{Field: "Term", Description: "Term is required"})
		return errs
	}
	if utf8.RuneCountInString(*req.Term) > maxTermLength {
		errs = append(errs, ValidationError{Field: "Term", Description: "Term is too long"})
	}
	return errs
}
