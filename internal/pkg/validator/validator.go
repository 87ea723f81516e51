package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

// TimeSlots are the bookable half-hour slots, in display form, covering the
// morning and afternoon consultation ranges.
var TimeSlots = []string{
	"09h00", "09h30", "10h00", "10h30", "11h00", "11h30",
	"14h00", "14h30", "15h00", "15h30", "16h00", "16h30",
	"17h00", "17h30", "18h00",
}

// ConsultationTypes are the consultation categories offered by the clinic.
var ConsultationTypes = []string{
	"Consultation générale",
	"Détartrage & Nettoyage",
	"Blanchiment dentaire",
	"Soins d'urgence",
	"Implantologie",
	"Orthodontie",
	"Pédodontie",
	"Autre",
}

func registerCustomValidations() {
	// Appointment time slot validation
	validate.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		slot := fl.Field().String()
		for _, s := range TimeSlots {
			if slot == s {
				return true
			}
		}
		return false
	})

	// Consultation type validation
	validate.RegisterValidation("consultation", func(fl validator.FieldLevel) bool {
		service := fl.Field().String()
		for _, s := range ConsultationTypes {
			if service == s {
				return true
			}
		}
		return false
	})
}

// Validate validates a struct and returns a map of field errors.
// One message per invalid field, first violated rule wins.
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		if _, seen := errors[field]; seen {
			continue
		}
		switch err.Tag() {
		case "required":
			errors[field] = "Ce champ est requis"
		case "email":
			errors[field] = "Adresse email invalide"
		case "min":
			errors[field] = "Valeur trop courte (min : " + err.Param() + ")"
		case "max":
			errors[field] = "Valeur trop longue (max : " + err.Param() + ")"
		case "timeslot":
			errors[field] = "Heure invalide. Choisissez un créneau proposé"
		case "consultation":
			errors[field] = "Type de consultation invalide"
		default:
			errors[field] = "Valeur invalide"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
