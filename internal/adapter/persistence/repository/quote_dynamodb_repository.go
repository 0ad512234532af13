package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"devfolio/internal/domain/entities"
	"devfolio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesAssessmentIndex  = "assessment_id-index"
)

type quoteItem struct {
	ID           string `dynamodbav:"id"`
	QuoteNumber  string `dynamodbav:"quote_number"`
	AssessmentID string `dynamodbav:"assessment_id"`
	Title        string `dynamodbav:"title"`
	ProposalRaw  string `dynamodbav:"proposal_raw"`
	TotalAmount  int    `dynamodbav:"total_amount"`
	Status       string `dynamodbav:"status"`
	ValidUntil   string `dynamodbav:"valid_until"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: assessment_id-index (PK: assessment_id)
//
// The proposal document is stored as a JSON blob. It is write-once and read
// back whole, so itemizing it into attributes would buy nothing.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) GetByAssessmentID(ctx context.Context, assessmentID string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesAssessmentIndex),
		KeyConditionExpression: aws.String("assessment_id = :aid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: assessmentID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.Quote) (quoteItem, error) {
	proposalRaw, err := json.Marshal(q.Proposal)
	if err != nil {
		return quoteItem{}, err
	}
	return quoteItem{
		ID:           q.ID,
		QuoteNumber:  q.QuoteNumber,
		AssessmentID: q.AssessmentID,
		Title:        q.Title,
		ProposalRaw:  string(proposalRaw),
		TotalAmount:  q.TotalAmount,
		Status:       string(q.Status),
		ValidUntil:   q.ValidUntil.UTC().Format(time.RFC3339Nano),
		CreatedAt:    q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	var proposal entities.ProposalDocument
	if it.ProposalRaw != "" {
		if err := json.Unmarshal([]byte(it.ProposalRaw), &proposal); err != nil {
			return entities.Quote{}, err
		}
	}
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quote{
		ID:           it.ID,
		QuoteNumber:  it.QuoteNumber,
		AssessmentID: it.AssessmentID,
		Title:        it.Title,
		Proposal:     proposal,
		TotalAmount:  it.TotalAmount,
		Status:       entities.QuoteStatus(it.Status),
		ValidUntil:   validUntil,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}
