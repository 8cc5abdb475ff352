package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
	"github.com/Rehan72/sol-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkflowStepsTableName = "workflow_steps"

type workflowStepItem struct {
	CustomerID  string `dynamodbav:"customer_id"`
	SortKey     string `dynamodbav:"sort_key"`
	Phase       string `dynamodbav:"phase"`
	StepID      string `dynamodbav:"step_id"`
	Label       string `dynamodbav:"label"`
	Ordinal     int    `dynamodbav:"ordinal"`
	Status      string `dynamodbav:"status"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// WorkflowStepDynamoRepository persists the per-phase checklist rows.
//
// Table requirements:
//   - PK: customer_id (string)
//   - SK: sort_key (string, "<phase>#<ordinal %02d>")
//
// The zero-padded ordinal keeps the range query in checklist order. SeedPhase
// writes each row with attribute_not_exists on the sort key and swallows the
// conditional failure, so re-seeding an initialized phase never resets
// progress. UpdateStatusIf conditions on the stored status and reports whether
// the write was applied.

type WorkflowStepDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkflowStepRepository = (*WorkflowStepDynamoRepository)(nil)

func NewWorkflowStepDynamoRepository(ddb *dynamodb.Client) *WorkflowStepDynamoRepository {
	return &WorkflowStepDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKFLOW_STEPS_TABLE", defaultWorkflowStepsTableName),
	}
}

func stepSortKey(phase entities.Phase, ordinal int) string {
	return fmt.Sprintf("%s#%02d", phase, ordinal)
}

func (r *WorkflowStepDynamoRepository) SeedPhase(ctx context.Context, steps []entities.WorkflowStep) error {
	for _, step := range steps {
		it := toWorkflowStepItem(step)
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return err
		}

		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#sort_key)"),
			ExpressionAttributeNames: map[string]string{
				"#sort_key": "sort_key",
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return err
		}
	}
	return nil
}

func (r *WorkflowStepDynamoRepository) ListByPhase(ctx context.Context, customerID string, phase entities.Phase) ([]entities.WorkflowStep, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("customer_id = :cid AND begins_with(sort_key, :phase)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":   &types.AttributeValueMemberS{Value: customerID},
			":phase": &types.AttributeValueMemberS{Value: string(phase) + "#"},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WorkflowStep, 0, len(out.Items))
	for _, raw := range out.Items {
		var it workflowStepItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWorkflowStepItem(it))
	}
	return items, nil
}

func (r *WorkflowStepDynamoRepository) UpdateStatusIf(ctx context.Context, step entities.WorkflowStep, expected entities.StepStatus) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(step.Status)},
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if step.CompletedAt != nil {
		expr += ", #completed_at = :completed_at"
		names["#completed_at"] = "completed_at"
		values[":completed_at"] = &types.AttributeValueMemberS{Value: step.CompletedAt.UTC().Format(time.RFC3339Nano)}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"customer_id": &types.AttributeValueMemberS{Value: step.CustomerID},
			"sort_key":    &types.AttributeValueMemberS{Value: stepSortKey(step.Phase, step.Ordinal)},
		},
		ConditionExpression:       aws.String("#status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toWorkflowStepItem(s entities.WorkflowStep) workflowStepItem {
	it := workflowStepItem{
		CustomerID: s.CustomerID,
		SortKey:    stepSortKey(s.Phase, s.Ordinal),
		Phase:      string(s.Phase),
		StepID:     s.StepID,
		Label:      s.Label,
		Ordinal:    s.Ordinal,
		Status:     string(s.Status),
		UpdatedAt:  s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.CompletedAt != nil {
		it.CompletedAt = s.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromWorkflowStepItem(it workflowStepItem) entities.WorkflowStep {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	s := entities.WorkflowStep{
		CustomerID: it.CustomerID,
		Phase:      entities.Phase(it.Phase),
		StepID:     it.StepID,
		Label:      it.Label,
		Ordinal:    it.Ordinal,
		Status:     entities.StepStatus(it.Status),
		UpdatedAt:  updatedAt,
	}
	if it.CompletedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			s.CompletedAt = &t
		}
	}
	return s
}
