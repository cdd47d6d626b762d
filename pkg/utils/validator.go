package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// A failed registration would silently disable status validation on
	// every request, so it is fatal.
	if err := validate.RegisterValidation("equipment_status", validateEquipmentStatus); err != nil {
		panic("register equipment_status validation: " + err.Error())
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateEquipmentStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	validStatuses := []string{"ReadyToUse", "UnderMaintenance", "Allocated"}

	for _, validStatus := range validStatuses {
		if status == validStatus {
			return true
		}
	}
	return false
}
