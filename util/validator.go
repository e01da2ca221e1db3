package util

import "github.com/go-playground/validator/v10"

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("wcagscore", validateScore)
	validate.RegisterValidation("votedir", validateVoteDirection)
	validate.RegisterValidation("reportreason", validateReportReason)
	validate.RegisterValidation("reportstatus", validateReportStatus)
}

func validateScore(fl validator.FieldLevel) bool {
	score := fl.Field().Int()
	return score >= 0 && score <= 100
}

func validateVoteDirection(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "up", "down":
		return true
	}
	return false
}

func validateReportReason(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "inappropriate", "incorrect", "spam", "other":
		return true
	}
	return false
}

func validateReportStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "reviewed", "resolved", "dismissed":
		return true
	}
	return false
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
