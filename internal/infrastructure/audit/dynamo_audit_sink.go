package audit

import (
	"context"
	"os"
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
	"github.com/Rehan72/sol-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

const defaultAuditTableName = "audit_events"

type auditEventItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	Entity     string `dynamodbav:"entity"`
	EntityID   string `dynamodbav:"entity_id"`
	ActorID    string `dynamodbav:"actor_id,omitempty"`
	ActorRole  string `dynamodbav:"actor_role,omitempty"`
	FromState  string `dynamodbav:"from_state,omitempty"`
	ToState    string `dynamodbav:"to_state"`
	Note       string `dynamodbav:"note,omitempty"`
	OccurredAt string `dynamodbav:"occurred_at"`
}

// DynamoAuditSink appends transition events to DynamoDB and mirrors each one
// as a structured log line, so the trail is queryable in storage and greppable
// in the log stream.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)

type DynamoAuditSink struct {
	ddb       *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

var _ interfaces.IAuditSink = (*DynamoAuditSink)(nil)

func NewDynamoAuditSink(ddb *dynamodb.Client, logger *zap.Logger) *DynamoAuditSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	tableName := os.Getenv("AUDIT_TABLE")
	if tableName == "" {
		tableName = defaultAuditTableName
	}
	return &DynamoAuditSink{ddb: ddb, tableName: tableName, logger: logger}
}

func (s *DynamoAuditSink) Record(ctx context.Context, event entities.AuditEvent) error {
	s.logger.Info("state transition",
		zap.String("audit_id", event.ID),
		zap.String("customer_id", event.CustomerID),
		zap.String("entity", event.Entity),
		zap.String("entity_id", event.EntityID),
		zap.String("actor_id", event.ActorID),
		zap.String("actor_role", string(event.ActorRole)),
		zap.String("from", event.FromState),
		zap.String("to", event.ToState),
		zap.String("note", event.Note),
		zap.Time("occurred_at", event.OccurredAt),
	)

	it := auditEventItem{
		ID:         event.ID,
		CustomerID: event.CustomerID,
		Entity:     event.Entity,
		EntityID:   event.EntityID,
		ActorID:    event.ActorID,
		ActorRole:  string(event.ActorRole),
		FromState:  event.FromState,
		ToState:    event.ToState,
		Note:       event.Note,
		OccurredAt: event.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
