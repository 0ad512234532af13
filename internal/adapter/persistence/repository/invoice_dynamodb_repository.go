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
	defaultInvoicesTableName = "invoices"
	invoicesQuoteIDIndex     = "quote_id-index"
)

type invoiceItem struct {
	ID                 string                 `dynamodbav:"id"`
	QuoteID            string                 `dynamodbav:"quote_id"`
	InvoiceNumber      string                 `dynamodbav:"invoice_number"`
	AmountCents        int64                  `dynamodbav:"amount_cents"`
	Status             string                 `dynamodbav:"status"`
	IssuedAt           string                 `dynamodbav:"issued_at"`
	PaidAt             string                 `dynamodbav:"paid_at,omitempty"`
	ProviderPaymentID  string                 `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceItem(it))
	}
	return items, nil
}

func (r *InvoiceDynamoRepository) MarkPaid(ctx context.Context, id string, providerPaymentID string, raw []byte) (entities.Invoice, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	var payload map[string]interface{}
	_ = json.Unmarshal(raw, &payload)

	vals := map[string]types.AttributeValue{
		":status":              &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
		":paid_at":             &types.AttributeValueMemberS{Value: now},
		":provider_payment_id": &types.AttributeValueMemberS{Value: providerPaymentID},
		":raw":                 &types.AttributeValueMemberS{Value: string(raw)},
	}
	names := map[string]string{
		"#id":                  "id",
		"#status":              "status",
		"#paid_at":             "paid_at",
		"#provider_payment_id": "provider_payment_id",
		"#raw":                 "provider_payload_raw",
	}
	expr := "SET #status = :status, #paid_at = :paid_at, #provider_payment_id = :provider_payment_id, #raw = :raw"
	if payload != nil {
		av, err := attributevalue.Marshal(payload)
		if err == nil {
			expr += ", #payload = :payload"
			vals[":payload"] = av
			names["#payload"] = "provider_payload"
		}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:                 inv.ID,
		QuoteID:            inv.QuoteID,
		InvoiceNumber:      inv.InvoiceNumber,
		AmountCents:        inv.AmountCents,
		Status:             string(inv.Status),
		IssuedAt:           inv.IssuedAt.UTC().Format(time.RFC3339Nano),
		ProviderPaymentID:  inv.ProviderPaymentID,
		ProviderPayload:    inv.ProviderPayload,
		ProviderPayloadRaw: string(inv.ProviderPayloadRaw),
	}
	if inv.PaidAt != nil {
		it.PaidAt = inv.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	issuedAt, _ := time.Parse(time.RFC3339Nano, it.IssuedAt)
	inv := entities.Invoice{
		ID:                 it.ID,
		QuoteID:            it.QuoteID,
		InvoiceNumber:      it.InvoiceNumber,
		AmountCents:        it.AmountCents,
		Status:             entities.InvoiceStatus(it.Status),
		IssuedAt:           issuedAt,
		ProviderPaymentID:  it.ProviderPaymentID,
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
	if it.PaidAt != "" {
		paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt)
		if err == nil {
			inv.PaidAt = &paidAt
		}
	}
	return inv
}
