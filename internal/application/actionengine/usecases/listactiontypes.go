package usecases

import (
	"context"

	"lerms/internal/application/actionengine/dto"
	"lerms/internal/domain/action"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

// ListActionTypesUseCase returns the seeded action vocabulary.
type ListActionTypesUseCase struct {
	typeRepo action.TypeRepository
	logger   logger.Interface
}

func NewListActionTypesUseCase(typeRepo action.TypeRepository, logger logger.Interface) *ListActionTypesUseCase {
	return &ListActionTypesUseCase{typeRepo: typeRepo, logger: logger}
}

func (uc *ListActionTypesUseCase) Execute(ctx context.Context) ([]*dto.ActionTypeDTO, error) {
	types, err := uc.typeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list action types", "error", err)
		return nil, apperrors.NewStorageError("list action types", err)
	}

	dtos := make([]*dto.ActionTypeDTO, 0, len(types))
	for _, t := range types {
		dtos = append(dtos, dto.ActionTypeToDTO(t))
	}
	return dtos, nil
}
