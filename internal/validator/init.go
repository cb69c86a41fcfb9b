package validator

import (
	"ctchen222/tictactoe/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// "cell" accepts an empty cell or a player mark.
	if err := validate.RegisterValidation("cell", validateCell); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

func validateCell(fl validator.FieldLevel) bool {
	_, err := game.ParseMark(fl.Field().String())
	return err == nil
}
