package queries

import (
	"workify/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toMoney(cents int64) (kernel.Money, error) {
	return kernel.NewMoney(cents)
}
