package mappers

import (
	"fmt"

	"lerms/internal/domain/action"
	"lerms/internal/domain/record"
	"lerms/internal/infrastructure/persistence/models"
)

// ActionMapper handles the conversion between the action vocabulary, audit
// log entries, and their persistence models
type ActionMapper interface {
	TypeToEntity(model *models.ActionTypeModel) *action.Type
	TypesToEntities(models []*models.ActionTypeModel) []*action.Type

	LogToEntity(model *models.ActionLogModel) (*action.Log, error)
	LogToModel(entity *action.Log) *models.ActionLogModel
	LogsToEntities(models []*models.ActionLogModel) ([]*action.Log, error)
}

type ActionMapperImpl struct{}

// NewActionMapper creates a new action mapper
func NewActionMapper() ActionMapper {
	return &ActionMapperImpl{}
}

func (m *ActionMapperImpl) TypeToEntity(model *models.ActionTypeModel) *action.Type {
	if model == nil {
		return nil
	}
	return &action.Type{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
	}
}

func (m *ActionMapperImpl) TypesToEntities(typeModels []*models.ActionTypeModel) []*action.Type {
	entities := make([]*action.Type, 0, len(typeModels))
	for _, model := range typeModels {
		entities = append(entities, m.TypeToEntity(model))
	}
	return entities
}

func (m *ActionMapperImpl) LogToEntity(model *models.ActionLogModel) (*action.Log, error) {
	if model == nil {
		return nil, nil
	}

	kind, err := record.ParseKind(model.RecordKind)
	if err != nil {
		return nil, fmt.Errorf("failed to parse record kind: %w", err)
	}
	oldStatus, err := record.ParseStatus(model.OldStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to parse old status: %w", err)
	}
	newStatus, err := record.ParseStatus(model.NewStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to parse new status: %w", err)
	}

	return &action.Log{
		ID:           model.ID,
		RecordKind:   kind,
		RecordID:     model.RecordID,
		ActionTypeID: model.ActionTypeID,
		ActionName:   model.ActionName,
		OldStatus:    oldStatus,
		NewStatus:    newStatus,
		ActingUserID: model.ActingUserID,
		IPAddress:    model.IPAddress,
		Notes:        model.Notes,
		CreatedAt:    model.CreatedAt,
	}, nil
}

func (m *ActionMapperImpl) LogToModel(entity *action.Log) *models.ActionLogModel {
	if entity == nil {
		return nil
	}
	return &models.ActionLogModel{
		ID:           entity.ID,
		RecordKind:   entity.RecordKind.String(),
		RecordID:     entity.RecordID,
		ActionTypeID: entity.ActionTypeID,
		ActionName:   entity.ActionName,
		OldStatus:    entity.OldStatus.String(),
		NewStatus:    entity.NewStatus.String(),
		ActingUserID: entity.ActingUserID,
		IPAddress:    entity.IPAddress,
		Notes:        entity.Notes,
		CreatedAt:    entity.CreatedAt,
	}
}

func (m *ActionMapperImpl) LogsToEntities(logModels []*models.ActionLogModel) ([]*action.Log, error) {
	entities := make([]*action.Log, 0, len(logModels))
	for _, model := range logModels {
		entity, err := m.LogToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
