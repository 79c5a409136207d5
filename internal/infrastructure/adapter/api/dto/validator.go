package dto

import (
	"fmt"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the forms
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("symbol", validateSymbol)
}

func validateSymbol(fl validator.FieldLevel) bool {
	_, err := entity.NormalizeSymbol(fl.Field().String())
	return err == nil
}
