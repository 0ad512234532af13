package repository

import (
	"context"
	"errors"
	"time"

	"devfolio/internal/domain/entities"
	"devfolio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAssessmentsTableName = "assessments"

type assessmentItem struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email"`
	Phone   string `dynamodbav:"phone,omitempty"`
	Company string `dynamodbav:"company,omitempty"`

	ProjectType    string   `dynamodbav:"project_type"`
	Description    string   `dynamodbav:"description,omitempty"`
	TargetAudience string   `dynamodbav:"target_audience,omitempty"`
	Goals          []string `dynamodbav:"goals,omitempty"`

	Platforms      []string `dynamodbav:"platforms,omitempty"`
	DataStorage    string   `dynamodbav:"data_storage,omitempty"`
	Authentication string   `dynamodbav:"authentication,omitempty"`
	NeedsPayments  bool     `dynamodbav:"needs_payments"`
	NeedsRealtime  bool     `dynamodbav:"needs_realtime"`
	APIAccess      []string `dynamodbav:"api_access,omitempty"`
	CMS            string   `dynamodbav:"cms,omitempty"`
	Features       []string `dynamodbav:"features,omitempty"`
	Integrations   []string `dynamodbav:"integrations,omitempty"`

	DesignStyle        string `dynamodbav:"design_style,omitempty"`
	HasBrandGuidelines bool   `dynamodbav:"has_brand_guidelines"`

	BusinessStage string `dynamodbav:"business_stage,omitempty"`
	PrimaryGoal   string `dynamodbav:"primary_goal,omitempty"`
	ExpectedUsers string `dynamodbav:"expected_users,omitempty"`
	RevenueModel  string `dynamodbav:"revenue_model,omitempty"`

	PreferredTimeline string `dynamodbav:"preferred_timeline,omitempty"`
	BudgetRange       string `dynamodbav:"budget_range,omitempty"`
	BudgetFlexibility string `dynamodbav:"budget_flexibility,omitempty"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// AssessmentDynamoRepository persists ProjectAssessment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type AssessmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssessmentRepository = (*AssessmentDynamoRepository)(nil)

func NewAssessmentDynamoRepository(ddb *dynamodb.Client) *AssessmentDynamoRepository {
	return &AssessmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSESSMENTS_TABLE", defaultAssessmentsTableName),
	}
}

func (r *AssessmentDynamoRepository) Create(ctx context.Context, a entities.ProjectAssessment) (entities.ProjectAssessment, error) {
	it := toAssessmentItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ProjectAssessment{}, err
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
		return entities.ProjectAssessment{}, err
	}
	return a, nil
}

func (r *AssessmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProjectAssessment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProjectAssessment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProjectAssessment{}, nil
	}

	var it assessmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProjectAssessment{}, err
	}
	return fromAssessmentItem(it), nil
}

func (r *AssessmentDynamoRepository) List(ctx context.Context) ([]entities.ProjectAssessment, error) {
	assessments := make([]entities.ProjectAssessment, 0)

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it assessmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			assessments = append(assessments, fromAssessmentItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return assessments, nil
}

func (r *AssessmentDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.AssessmentStatus) (entities.ProjectAssessment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ProjectAssessment{}, nil
		}
		return entities.ProjectAssessment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ProjectAssessment{}, nil
	}

	var it assessmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ProjectAssessment{}, err
	}
	return fromAssessmentItem(it), nil
}

func toAssessmentItem(a entities.ProjectAssessment) assessmentItem {
	return assessmentItem{
		ID:      a.ID,
		Name:    a.Name,
		Email:   a.Email,
		Phone:   a.Phone,
		Company: a.Company,

		ProjectType:    a.ProjectType,
		Description:    a.Description,
		TargetAudience: a.TargetAudience,
		Goals:          a.Goals,

		Platforms:      a.Platforms,
		DataStorage:    a.DataStorage,
		Authentication: a.Authentication,
		NeedsPayments:  a.NeedsPayments,
		NeedsRealtime:  a.NeedsRealtime,
		APIAccess:      a.APIAccess,
		CMS:            a.CMS,
		Features:       a.Features,
		Integrations:   a.Integrations,

		DesignStyle:        a.DesignStyle,
		HasBrandGuidelines: a.HasBrandGuidelines,

		BusinessStage: a.BusinessStage,
		PrimaryGoal:   a.PrimaryGoal,
		ExpectedUsers: a.ExpectedUsers,
		RevenueModel:  a.RevenueModel,

		PreferredTimeline: a.PreferredTimeline,
		BudgetRange:       a.BudgetRange,
		BudgetFlexibility: a.BudgetFlexibility,

		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAssessmentItem(it assessmentItem) entities.ProjectAssessment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ProjectAssessment{
		ID:      it.ID,
		Name:    it.Name,
		Email:   it.Email,
		Phone:   it.Phone,
		Company: it.Company,

		ProjectType:    it.ProjectType,
		Description:    it.Description,
		TargetAudience: it.TargetAudience,
		Goals:          it.Goals,

		Platforms:      it.Platforms,
		DataStorage:    it.DataStorage,
		Authentication: it.Authentication,
		NeedsPayments:  it.NeedsPayments,
		NeedsRealtime:  it.NeedsRealtime,
		APIAccess:      it.APIAccess,
		CMS:            it.CMS,
		Features:       it.Features,
		Integrations:   it.Integrations,

		DesignStyle:        it.DesignStyle,
		HasBrandGuidelines: it.HasBrandGuidelines,

		BusinessStage: it.BusinessStage,
		PrimaryGoal:   it.PrimaryGoal,
		ExpectedUsers: it.ExpectedUsers,
		RevenueModel:  it.RevenueModel,

		PreferredTimeline: it.PreferredTimeline,
		BudgetRange:       it.BudgetRange,
		BudgetFlexibility: it.BudgetFlexibility,

		Status:    entities.AssessmentStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
