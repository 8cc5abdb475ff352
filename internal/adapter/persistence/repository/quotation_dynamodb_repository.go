package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
	"github.com/Rehan72/sol-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName = "quotations"
	quotationsCustomerIDIndex  = "customer_id-index"
)

type quotationItem struct {
	ID           string `dynamodbav:"id"`
	CustomerID   string `dynamodbav:"customer_id"`
	Total        string `dynamodbav:"total"`
	Status       string `dynamodbav:"status"`
	RejectReason string `dynamodbav:"reject_reason,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id, SK: created_at)
//
// UpdateStatusIf is the linearization point of the approval chain: the write
// carries a `#status = :from` condition, so of two racing transitions exactly
// one lands. The conditional failure surfaces as a zero value with nil error;
// the usecase re-reads and classifies the conflict.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it := toQuotationItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) GetLatestByCustomerID(ctx context.Context, customerID string) (entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) UpdateStatusIf(ctx context.Context, id string, from, to entities.QuotationStatus, rejectReason string) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :to, #updated_at = :updated_at"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if rejectReason != "" {
		expr += ", #reject_reason = :reject_reason"
		names["#reject_reason"] = "reject_reason"
		values[":reject_reason"] = &types.AttributeValueMemberS{Value: rejectReason}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("#status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	return quotationItem{
		ID:           q.ID,
		CustomerID:   q.CustomerID,
		Total:        strconv.FormatInt(q.Total, 10),
		Status:       string(q.Status),
		RejectReason: q.RejectReason,
		CreatedAt:    q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseInt(it.Total, 10, 64)
	return entities.Quotation{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		Total:        total,
		Status:       entities.QuotationStatus(it.Status),
		RejectReason: it.RejectReason,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
