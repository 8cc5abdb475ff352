package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Rehan72/sol-sub000/internal/domain/entities"
	"github.com/Rehan72/sol-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	customersRegionIndex      = "region-index"
)

type customerItem struct {
	ID                    string `dynamodbav:"id"`
	Name                  string `dynamodbav:"name"`
	Phone                 string `dynamodbav:"phone"`
	Email                 string `dynamodbav:"email,omitempty"`
	Address               string `dynamodbav:"address,omitempty"`
	Region                string `dynamodbav:"region,omitempty"`
	SurveyStatus          string `dynamodbav:"survey_status"`
	InstallationStatus    string `dynamodbav:"installation_status"`
	AssignedSurveyorID    string `dynamodbav:"assigned_surveyor_id,omitempty"`
	AssignedTeamID        string `dynamodbav:"assigned_team_id,omitempty"`
	LatestQuotationID     string `dynamodbav:"latest_quotation_id,omitempty"`
	LatestQuotationStatus string `dynamodbav:"latest_quotation_status,omitempty"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: region-index (PK: region)
//
// Status fields only change through ApplyStatusPatch, which builds a SET
// expression from the non-nil patch fields so unrelated attributes are never
// clobbered by concurrent writers.

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	it := toCustomerItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Customer{}, err
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
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) List(ctx context.Context, region string) ([]entities.Customer, error) {
	if region != "" {
		return r.listByRegion(ctx, region)
	}

	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCustomers(out.Items)
}

func (r *CustomerDynamoRepository) listByRegion(ctx context.Context, region string) ([]entities.Customer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(customersRegionIndex),
		KeyConditionExpression: aws.String("#region = :region"),
		ExpressionAttributeNames: map[string]string{
			"#region": "region",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":region": &types.AttributeValueMemberS{Value: region},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalCustomers(out.Items)
}

func (r *CustomerDynamoRepository) ApplyStatusPatch(ctx context.Context, id string, patch interfaces.CustomerStatusPatch) (entities.Customer, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #updated_at = :updated_at"
	names := map[string]string{
		"#id":         "id",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}

	set := func(attr string, value string) {
		placeholder := "#" + attr
		valueKey := ":" + attr
		expr += ", " + placeholder + " = " + valueKey
		names[placeholder] = attr
		values[valueKey] = &types.AttributeValueMemberS{Value: value}
	}

	if patch.SurveyStatus != nil {
		set("survey_status", string(*patch.SurveyStatus))
	}
	if patch.InstallationStatus != nil {
		set("installation_status", string(*patch.InstallationStatus))
	}
	if patch.AssignedSurveyorID != nil {
		set("assigned_surveyor_id", *patch.AssignedSurveyorID)
	}
	if patch.AssignedTeamID != nil {
		set("assigned_team_id", *patch.AssignedTeamID)
	}
	if patch.LatestQuotationID != nil {
		set("latest_quotation_id", *patch.LatestQuotationID)
	}
	if patch.LatestQuotationStatus != nil {
		set("latest_quotation_status", string(*patch.LatestQuotationStatus))
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func unmarshalCustomers(raw []map[string]types.AttributeValue) ([]entities.Customer, error) {
	items := make([]entities.Customer, 0, len(raw))
	for _, m := range raw {
		var it customerItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCustomerItem(it))
	}
	return items, nil
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:                    c.ID,
		Name:                  c.Name,
		Phone:                 c.Phone,
		Email:                 c.Email,
		Address:               c.Address,
		Region:                c.Region,
		SurveyStatus:          string(c.SurveyStatus),
		InstallationStatus:    string(c.InstallationStatus),
		AssignedSurveyorID:    c.AssignedSurveyorID,
		AssignedTeamID:        c.AssignedTeamID,
		LatestQuotationID:     c.LatestQuotationID,
		LatestQuotationStatus: string(c.LatestQuotationStatus),
		CreatedAt:             c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Customer{
		ID:                    it.ID,
		Name:                  it.Name,
		Phone:                 it.Phone,
		Email:                 it.Email,
		Address:               it.Address,
		Region:                it.Region,
		SurveyStatus:          entities.SurveyStatus(it.SurveyStatus),
		InstallationStatus:    entities.InstallationStatus(it.InstallationStatus),
		AssignedSurveyorID:    it.AssignedSurveyorID,
		AssignedTeamID:        it.AssignedTeamID,
		LatestQuotationID:     it.LatestQuotationID,
		LatestQuotationStatus: entities.QuotationStatus(it.LatestQuotationStatus),
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
}
