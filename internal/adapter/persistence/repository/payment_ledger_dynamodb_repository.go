package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"zapshift/internal/domain/entities"
	"zapshift/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentRecordsTableName = "payment_records"
	paymentRecordsParcelIDIndex    = "parcel_id-index"
)

type paymentRecordItem struct {
	IdempotencyKey string  `dynamodbav:"idempotency_key"`
	ID             string  `dynamodbav:"record_id,omitempty"`
	ParcelID       string  `dynamodbav:"parcel_id"`
	Amount         float64 `dynamodbav:"amount,omitempty"`
	Currency       string  `dynamodbav:"currency,omitempty"`
	CustomerEmail  string  `dynamodbav:"customer_email,omitempty"`
	ParcelName     string  `dynamodbav:"parcel_name,omitempty"`
	TrackingID     string  `dynamodbav:"tracking_id,omitempty"`
	Status         string  `dynamodbav:"status"`
	PaidAt         string  `dynamodbav:"paid_at,omitempty"`
}

// PaymentLedgerDynamoRepository is the append-only ledger of confirmed
// payments.
//
// Table requirements:
//   - payment_records: PK idempotency_key (string),
//     GSI parcel_id-index (PK: parcel_id)
//
// The partition key IS the idempotency key, so the conditional put in
// Reserve is the storage-enforced uniqueness the whole confirmation flow
// hangs on. Finalize only ever completes a reserved row; a recorded row is
// never written again.

type PaymentLedgerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentLedgerRepository = (*PaymentLedgerDynamoRepository)(nil)

func NewPaymentLedgerDynamoRepository(ddb *dynamodb.Client) *PaymentLedgerDynamoRepository {
	return &PaymentLedgerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_RECORDS_TABLE", defaultPaymentRecordsTableName),
	}
}

func (r *PaymentLedgerDynamoRepository) Reserve(ctx context.Context, idempotencyKey, parcelID string) (entities.PaymentRecord, error) {
	rec := entities.PaymentRecord{
		IdempotencyKey: idempotencyKey,
		ParcelID:       parcelID,
		Status:         entities.PaymentRecordStatusReserved,
	}
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(rec))
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#key)"),
		ExpressionAttributeNames: map[string]string{
			"#key": "idempotency_key",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentRecord{}, interfaces.ErrIdempotencyKeyExists
		}
		return entities.PaymentRecord{}, err
	}
	return rec, nil
}

func (r *PaymentLedgerDynamoRepository) Finalize(ctx context.Context, rec entities.PaymentRecord) (entities.PaymentRecord, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"idempotency_key": &types.AttributeValueMemberS{Value: rec.IdempotencyKey},
		},
		// Only a reserved row may be completed; recorded rows are immutable.
		ConditionExpression: aws.String("attribute_exists(#key) AND #status = :reserved"),
		UpdateExpression: aws.String(
			"SET #status = :recorded, record_id = :record_id, amount = :amount, currency = :currency, " +
				"customer_email = :customer_email, parcel_name = :parcel_name, tracking_id = :tracking_id, paid_at = :paid_at",
		),
		ExpressionAttributeNames: map[string]string{
			"#key":    "idempotency_key",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":reserved":       &types.AttributeValueMemberS{Value: string(entities.PaymentRecordStatusReserved)},
			":recorded":       &types.AttributeValueMemberS{Value: string(entities.PaymentRecordStatusRecorded)},
			":record_id":      &types.AttributeValueMemberS{Value: rec.ID},
			":amount":         &types.AttributeValueMemberN{Value: strconv.FormatFloat(rec.Amount, 'f', -1, 64)},
			":currency":       &types.AttributeValueMemberS{Value: rec.Currency},
			":customer_email": &types.AttributeValueMemberS{Value: rec.CustomerEmail},
			":parcel_name":    &types.AttributeValueMemberS{Value: rec.ParcelName},
			":tracking_id":    &types.AttributeValueMemberS{Value: rec.TrackingID},
			":paid_at":        &types.AttributeValueMemberS{Value: rec.PaidAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentRecord{}, interfaces.ErrLedgerRowNotReserved
		}
		return entities.PaymentRecord{}, err
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

// AttachTrackingID persists the claimed tracking ID into the reserved row
// before the parcel transition is attempted. The row itself then carries the
// claim, so recovery and conflict decisions can be made from a consistent
// primary-key read instead of the eventually consistent GSI. Re-attaching
// the same tracking ID is a no-op; anything else fails the guard.
func (r *PaymentLedgerDynamoRepository) AttachTrackingID(ctx context.Context, idempotencyKey, trackingID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"idempotency_key": &types.AttributeValueMemberS{Value: idempotencyKey},
		},
		ConditionExpression: aws.String(
			"attribute_exists(#key) AND #status = :reserved AND (attribute_not_exists(#tracking_id) OR #tracking_id = :tracking_id)",
		),
		UpdateExpression: aws.String("SET #tracking_id = :tracking_id"),
		ExpressionAttributeNames: map[string]string{
			"#key":         "idempotency_key",
			"#status":      "status",
			"#tracking_id": "tracking_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":reserved":    &types.AttributeValueMemberS{Value: string(entities.PaymentRecordStatusReserved)},
			":tracking_id": &types.AttributeValueMemberS{Value: trackingID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrLedgerRowNotReserved
		}
		return err
	}
	return nil
}

func (r *PaymentLedgerDynamoRepository) GetByIdempotencyKey(ctx context.Context, idempotencyKey string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"idempotency_key": &types.AttributeValueMemberS{Value: idempotencyKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

// GetByParcelID returns the recorded ledger entry for a parcel, if any.
// Reserved rows are skipped: until finalization they are claims, not facts.
func (r *PaymentLedgerDynamoRepository) GetByParcelID(ctx context.Context, parcelID string) (entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentRecordsParcelIDIndex),
		KeyConditionExpression: aws.String("parcel_id = :pid"),
		FilterExpression:       aws.String("#status = :recorded"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid":      &types.AttributeValueMemberS{Value: parcelID},
			":recorded": &types.AttributeValueMemberS{Value: string(entities.PaymentRecordStatusRecorded)},
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func toPaymentRecordItem(rec entities.PaymentRecord) paymentRecordItem {
	it := paymentRecordItem{
		IdempotencyKey: rec.IdempotencyKey,
		ID:             rec.ID,
		ParcelID:       rec.ParcelID,
		Amount:         rec.Amount,
		Currency:       rec.Currency,
		CustomerEmail:  rec.CustomerEmail,
		ParcelName:     rec.ParcelName,
		TrackingID:     rec.TrackingID,
		Status:         string(rec.Status),
	}
	if !rec.PaidAt.IsZero() {
		it.PaidAt = rec.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	paidAt, _ := time.Parse(time.RFC3339Nano, it.PaidAt)
	return entities.PaymentRecord{
		ID:             it.ID,
		IdempotencyKey: it.IdempotencyKey,
		ParcelID:       it.ParcelID,
		Amount:         it.Amount,
		Currency:       it.Currency,
		CustomerEmail:  it.CustomerEmail,
		ParcelName:     it.ParcelName,
		TrackingID:     it.TrackingID,
		Status:         entities.PaymentRecordStatus(it.Status),
		PaidAt:         paidAt,
	}
}
