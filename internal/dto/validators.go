package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/cemas-app/cemas_backend/internal/core/domain"
)

func init() {
	registerCustomValidators()
}

// registerCustomValidators installs domain-aware checks on gin's binding
// engine so request structs can use them in binding tags.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("metodo_pago", validPaymentMethod)
	_ = v.RegisterValidation("tipo_categoria", validCategoryKind)
}

// validPaymentMethod accepts the enumerated payment methods. Empty passes;
// the service substitutes the cash default.
func validPaymentMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || domain.PaymentMethod(value).Valid()
}

func validCategoryKind(fl validator.FieldLevel) bool {
	return domain.CategoryKind(fl.Field().String()).Valid()
}
