package infrastructure

import (
	"github.com/google/uuid"
)

// GenerateUUID é o gerador de identificadores padrão das entidades.
func GenerateUUID() string {
	return uuid.New().String()
}
