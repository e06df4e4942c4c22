package repository

import (
	"context"
	"errors"

	"cobranza_campo/internal/domain/entities"
	"cobranza_campo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPagosTableName = "pagos_pendientes"
	pagosCreditIndex      = "credito-index"
)

type pendingPaymentItem struct {
	ID               string   `dynamodbav:"id"`
	CreditID         string   `dynamodbav:"credito"`
	CycleID          string   `dynamodbav:"ciclo"`
	Amount           float64  `dynamodbav:"monto"`
	Comments         string   `dynamodbav:"comentarios"`
	PaymentTypeCode  string   `dynamodbav:"tipo_pago"`
	PaymentTypeLabel string   `dynamodbav:"tipo_etiqueta"`
	CapturedAt       string   `dynamodbav:"fecha_captura"`
	ClientName       string   `dynamodbav:"nombre_cliente"`
	Status           string   `dynamodbav:"estado"`
	ReceiptImageRef  string   `dynamodbav:"foto_comprobante,omitempty"`
	Latitude         *float64 `dynamodbav:"latitud,omitempty"`
	Longitude        *float64 `dynamodbav:"longitud,omitempty"`
	UserID           string   `dynamodbav:"usuario_id,omitempty"`
}

// PendingPaymentDynamoRepository persists the payment queue in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: credito-index (PK: credito)
//
// The conditional put on id is what implements insert-if-absent: a capture
// that hashes to an already-queued id is rejected by DynamoDB itself, so the
// dedup guarantee holds even with concurrent writers.

type PendingPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPendingPaymentRepository = (*PendingPaymentDynamoRepository)(nil)

func NewPendingPaymentDynamoRepository(ddb *dynamodb.Client) *PendingPaymentDynamoRepository {
	return &PendingPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAGOS_TABLE", defaultPagosTableName),
	}
}

func (r *PendingPaymentDynamoRepository) Save(ctx context.Context, p entities.PendingPayment) (entities.PendingPayment, bool, error) {
	av, err := attributevalue.MarshalMap(toPendingPaymentItem(p))
	if err != nil {
		return entities.PendingPayment{}, false, err
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
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			existing, getErr := r.getByID(ctx, p.ID)
			if getErr != nil {
				return entities.PendingPayment{}, false, getErr
			}
			return existing, true, nil
		}
		return entities.PendingPayment{}, false, err
	}
	return p, false, nil
}

func (r *PendingPaymentDynamoRepository) GetAll(ctx context.Context) ([]entities.PendingPayment, error) {
	payments := make([]entities.PendingPayment, 0)

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
			var it pendingPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			payments = append(payments, fromPendingPaymentItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return payments, nil
}

func (r *PendingPaymentDynamoRepository) GetByCredit(ctx context.Context, creditID string) ([]entities.PendingPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(pagosCreditIndex),
		KeyConditionExpression: aws.String("credito = :credito"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":credito": &types.AttributeValueMemberS{Value: creditID},
		},
	})
	if err != nil {
		return nil, err
	}

	payments := make([]entities.PendingPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pendingPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPendingPaymentItem(it))
	}
	return payments, nil
}

// Delete is idempotent: removing an id that is not queued succeeds.
func (r *PendingPaymentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *PendingPaymentDynamoRepository) DeleteAll(ctx context.Context) error {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("id"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return err
		}

		for _, raw := range out.Items {
			var it struct {
				ID string `dynamodbav:"id"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return err
			}
			if err := r.Delete(ctx, it.ID); err != nil {
				return err
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *PendingPaymentDynamoRepository) TotalByCredit(ctx context.Context, creditID string) (float64, error) {
	payments, err := r.GetByCredit(ctx, creditID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, p := range payments {
		total += p.Amount
	}
	return total, nil
}

func (r *PendingPaymentDynamoRepository) getByID(ctx context.Context, id string) (entities.PendingPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PendingPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.PendingPayment{}, nil
	}

	var it pendingPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PendingPayment{}, err
	}
	return fromPendingPaymentItem(it), nil
}

func toPendingPaymentItem(p entities.PendingPayment) pendingPaymentItem {
	return pendingPaymentItem{
		ID:               p.ID,
		CreditID:         p.CreditID,
		CycleID:          p.CycleID,
		Amount:           p.Amount,
		Comments:         p.Comments,
		PaymentTypeCode:  p.PaymentTypeCode,
		PaymentTypeLabel: p.PaymentTypeLabel,
		CapturedAt:       p.CapturedAt,
		ClientName:       p.ClientName,
		Status:           string(p.Status),
		ReceiptImageRef:  p.ReceiptImageRef,
		Latitude:         p.Latitude,
		Longitude:        p.Longitude,
		UserID:           p.UserID,
	}
}

func fromPendingPaymentItem(it pendingPaymentItem) entities.PendingPayment {
	return entities.PendingPayment{
		ID:               it.ID,
		CreditID:         it.CreditID,
		CycleID:          it.CycleID,
		Amount:           it.Amount,
		Comments:         it.Comments,
		PaymentTypeCode:  it.PaymentTypeCode,
		PaymentTypeLabel: it.PaymentTypeLabel,
		CapturedAt:       it.CapturedAt,
		ClientName:       it.ClientName,
		Status:           entities.PaymentStatus(it.Status),
		ReceiptImageRef:  it.ReceiptImageRef,
		Latitude:         it.Latitude,
		Longitude:        it.Longitude,
		UserID:           it.UserID,
	}
}
