package application

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mateusmacedo/go-todo/internal/todo/domain"
)

var validate = validator.New()

func validatePayload(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidTodoItem, err)
	}
	return nil
}
