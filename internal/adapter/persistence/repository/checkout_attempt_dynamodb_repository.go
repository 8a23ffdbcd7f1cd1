package repository

import (
	"context"
	"errors"
	"time"

	"escolha_divina/internal/domain/entities"
	"escolha_divina/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCheckoutAttemptsTableName = "checkout_attempts"

// DynamoDBAPI is the part of *dynamodb.Client the repository uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type checkoutAttemptItem struct {
	TransactionID  string `dynamodbav:"transaction_id"`
	OrderID        string `dynamodbav:"order_id"`
	ProductID      string `dynamodbav:"product_id"`
	Amount         string `dynamodbav:"amount"`
	Status         string `dynamodbav:"status"`
	Provenance     string `dynamodbav:"provenance"`
	FallbackReason string `dynamodbav:"fallback_reason,omitempty"`
	ExpiresAt      string `dynamodbav:"expires_at,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// CheckoutAttemptDynamoRepository persists CheckoutAttempt audit records.
//
// Table requirements:
//   - PK: transaction_id (string)
type CheckoutAttemptDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICheckoutAttemptRepository = (*CheckoutAttemptDynamoRepository)(nil)

func NewCheckoutAttemptDynamoRepository(ddb DynamoDBAPI, tableName string) *CheckoutAttemptDynamoRepository {
	if tableName == "" {
		tableName = defaultCheckoutAttemptsTableName
	}
	return &CheckoutAttemptDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CheckoutAttemptDynamoRepository) Create(ctx context.Context, a entities.CheckoutAttempt) (entities.CheckoutAttempt, error) {
	av, err := attributevalue.MarshalMap(toCheckoutAttemptItem(a))
	if err != nil {
		return entities.CheckoutAttempt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "transaction_id",
		},
	})
	if err != nil {
		return entities.CheckoutAttempt{}, err
	}
	return a, nil
}

func (r *CheckoutAttemptDynamoRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.CheckoutAttempt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CheckoutAttempt{}, err
	}
	if len(out.Item) == 0 {
		return entities.CheckoutAttempt{}, nil
	}

	var it checkoutAttemptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CheckoutAttempt{}, err
	}
	return fromCheckoutAttemptItem(it), nil
}

func (r *CheckoutAttemptDynamoRepository) UpdateStatus(ctx context.Context, transactionID string, status entities.PaymentStatus) (entities.CheckoutAttempt, error) {
	return r.update(ctx, transactionID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #status = :s, updated_at = :u",
			map[string]types.AttributeValue{
				":s": &types.AttributeValueMemberS{Value: string(status)},
				":u": &types.AttributeValueMemberS{Value: now},
			},
			map[string]string{"#status": "status"}
	})
}

// update applies a conditional update; a missing item yields a zero value.
func (r *CheckoutAttemptDynamoRepository) update(
	ctx context.Context,
	transactionID string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.CheckoutAttempt, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "transaction_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CheckoutAttempt{}, nil
		}
		return entities.CheckoutAttempt{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CheckoutAttempt{}, nil
	}
	var it checkoutAttemptItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CheckoutAttempt{}, err
	}
	return fromCheckoutAttemptItem(it), nil
}

func toCheckoutAttemptItem(a entities.CheckoutAttempt) checkoutAttemptItem {
	return checkoutAttemptItem{
		TransactionID:  a.TransactionID,
		OrderID:        a.OrderID,
		ProductID:      a.ProductID,
		Amount:         a.Amount.String(),
		Status:         string(a.Status),
		Provenance:     string(a.Provenance),
		FallbackReason: string(a.FallbackReason),
		ExpiresAt:      formatTime(a.ExpiresAt),
		CreatedAt:      formatTime(a.CreatedAt),
		UpdatedAt:      formatTime(a.UpdatedAt),
	}
}

func fromCheckoutAttemptItem(it checkoutAttemptItem) entities.CheckoutAttempt {
	return entities.CheckoutAttempt{
		TransactionID:  it.TransactionID,
		OrderID:        it.OrderID,
		ProductID:      it.ProductID,
		Amount:         parseDecimal(it.Amount),
		Status:         entities.PaymentStatus(it.Status),
		Provenance:     entities.Provenance(it.Provenance),
		FallbackReason: entities.FallbackReason(it.FallbackReason),
		ExpiresAt:      parseTime(it.ExpiresAt),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
