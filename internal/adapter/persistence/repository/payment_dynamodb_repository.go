package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
	"github.com/Rehan72/sol-sub000/internal/domain/lifecycle"
	"github.com/Rehan72/sol-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "milestone_payments"
	paymentsCustomerIDIndex  = "customer_id-index"
)

type paymentItem struct {
	ID                 string `dynamodbav:"id"`
	CustomerID         string `dynamodbav:"customer_id"`
	QuotationID        string `dynamodbav:"quotation_id"`
	MilestoneID        string `dynamodbav:"milestone_id"`
	Amount             string `dynamodbav:"amount"`
	PaidAt             string `dynamodbav:"paid_at"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus     string `dynamodbav:"provider_status,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists the append-only milestone payment ledger.
//
// Table requirements:
//   - PK: id (string, deterministic "<customer_id>#<milestone_id>")
//   - GSI: customer_id-index (PK: customer_id)
//
// Rows are never updated or deleted. Append carries an attribute_not_exists
// condition on the deterministic key; a conditional failure means the
// milestone is already paid and surfaces as lifecycle.ErrDuplicatePayment.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Append(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, lifecycle.ErrDuplicatePayment
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		CustomerID:         p.CustomerID,
		QuotationID:        p.QuotationID,
		MilestoneID:        string(p.MilestoneID),
		Amount:             strconv.FormatInt(p.Amount, 10),
		PaidAt:             p.PaidAt.UTC().Format(time.RFC3339Nano),
		ProviderPaymentID:  p.ProviderPaymentID,
		ProviderStatus:     p.ProviderStatus,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	paidAt, _ := time.Parse(time.RFC3339Nano, it.PaidAt)
	amount, _ := strconv.ParseInt(it.Amount, 10, 64)
	return entities.Payment{
		ID:                 it.ID,
		CustomerID:         it.CustomerID,
		QuotationID:        it.QuotationID,
		MilestoneID:        entities.MilestoneID(it.MilestoneID),
		Amount:             amount,
		PaidAt:             paidAt,
		ProviderPaymentID:  it.ProviderPaymentID,
		ProviderStatus:     it.ProviderStatus,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
