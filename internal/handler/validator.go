package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// Custom validation tags
const (
	TagSectionID      = "section_id"
	TagSectionIDOrAll = "section_id_or_all"
	TagWeeklyBoost    = "weekly_boost"
	TagEventType      = "event_type"
	TagPriceStrategy  = "price_strategy"
	TagEpisode        = "episode"
)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report JSON field names rather than struct field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation(TagSectionID, validateSectionID)
	_ = v.RegisterValidation(TagSectionIDOrAll, validateSectionIDOrAll)
	_ = v.RegisterValidation(TagWeeklyBoost, parses(domain.ParseWeeklyBoost))
	_ = v.RegisterValidation(TagEventType, parses(domain.ParseEventType))
	_ = v.RegisterValidation(TagPriceStrategy, parses(pricing.ParseStrategy))
	_ = v.RegisterValidation(TagEpisode, validateEpisode)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	// Check if it's a validator.ValidationErrors
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case TagSectionID:
			errs[field] = "Unknown section ID"
		case TagSectionIDOrAll:
			errs[field] = fmt.Sprintf("Unknown section ID (use a section ID or %q)", domain.SectionAll)
		case TagWeeklyBoost:
			errs[field] = "Unknown weekly boost (DAR, RDR, RareEnemy, XP)"
		case TagEventType:
			errs[field] = "Unknown event (Easter, Halloween, Christmas, ValentinesDay, Anniversary)"
		case TagPriceStrategy:
			errs[field] = "Unknown price strategy (minimum, average, maximum)"
		case TagEpisode:
			errs[field] = "Unknown episode (1, 2, 4)"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// parses adapts a string parser, which accepts empty input, into a validation func
func parses[T any](parse func(string) (T, error)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := parse(fl.Field().String())
		return err == nil
	}
}

// Custom validation function for section IDs; empty is left to the required tag
func validateSectionID(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := domain.ParseSectionID(s)
	return err == nil
}

func validateSectionIDOrAll(fl validator.FieldLevel) bool {
	if strings.EqualFold(strings.TrimSpace(fl.Field().String()), domain.SectionAll) {
		return true
	}
	return validateSectionID(fl)
}

// validateEpisode accepts 0 for "every episode"
func validateEpisode(fl validator.FieldLevel) bool {
	ep := domain.Episode(fl.Field().Int())
	if ep == 0 {
		return true
	}
	for _, known := range domain.AllEpisodes {
		if ep == known {
			return true
		}
	}
	return false
}
