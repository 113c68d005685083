package repository

import (
	"context"
	"errors"
	"time"

	"zapshift/internal/domain/entities"
	"zapshift/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultParcelsTableName     = "parcels"
	defaultTrackingIDsTableName = "tracking_ids"
	parcelsSenderEmailIndex     = "sender_email-index"
)

type parcelItem struct {
	ID          string `dynamodbav:"id"`
	SenderEmail string `dynamodbav:"sender_email"`
	ParcelName  string `dynamodbav:"parcel_name"`
	Cost        string `dynamodbav:"cost"`
	Status      string `dynamodbav:"status"`
	TrackingID  string `dynamodbav:"tracking_id,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ParcelDynamoRepository persists Parcel entities in DynamoDB.
//
// Table requirements:
//   - parcels: PK id (string), GSI sender_email-index (PK: sender_email)
//   - tracking_ids: PK id (string), claim items only
//
// DynamoDB has no cross-item unique constraint, so tracking-ID uniqueness
// uses claim items: a conditional put into tracking_ids that fails when the
// ID was already claimed. MarkPaid is a conditional update on
// status = pending, which is what keeps the pending -> paid transition
// one-way under concurrent confirmations.

type ParcelDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	trackingTable string
}

var _ interfaces.IParcelRepository = (*ParcelDynamoRepository)(nil)

func NewParcelDynamoRepository(ddb *dynamodb.Client) *ParcelDynamoRepository {
	return &ParcelDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("PARCELS_TABLE", defaultParcelsTableName),
		trackingTable: getenvDefault("TRACKING_IDS_TABLE", defaultTrackingIDsTableName),
	}
}

func (r *ParcelDynamoRepository) Create(ctx context.Context, p entities.Parcel) (entities.Parcel, error) {
	it := toParcelItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Parcel{}, err
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
		return entities.Parcel{}, err
	}
	return p, nil
}

func (r *ParcelDynamoRepository) GetByID(ctx context.Context, id string) (entities.Parcel, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Parcel{}, err
	}
	if len(out.Item) == 0 {
		return entities.Parcel{}, nil
	}

	var it parcelItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Parcel{}, err
	}
	return fromParcelItem(it), nil
}

func (r *ParcelDynamoRepository) List(ctx context.Context) ([]entities.Parcel, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalParcels(out.Items)
}

func (r *ParcelDynamoRepository) ListBySenderEmail(ctx context.Context, email string) ([]entities.Parcel, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(parcelsSenderEmailIndex),
		KeyConditionExpression: aws.String("sender_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalParcels(out.Items)
}

// ClaimTrackingID atomically claims a tracking ID for a parcel. The claim
// item doubles as a tracking-number -> parcel lookup.
func (r *ParcelDynamoRepository) ClaimTrackingID(ctx context.Context, trackingID, parcelID string) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.trackingTable),
		Item: map[string]types.AttributeValue{
			"id":         &types.AttributeValueMemberS{Value: trackingID},
			"parcel_id":  &types.AttributeValueMemberS{Value: parcelID},
			"claimed_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrTrackingIDTaken
		}
		return err
	}
	return nil
}

func (r *ParcelDynamoRepository) ReleaseTrackingID(ctx context.Context, trackingID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.trackingTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: trackingID},
		},
	})
	return err
}

// MarkPaid transitions a parcel to paid and sets its tracking ID in one
// guarded write. The condition on status = pending makes the transition a
// compare-and-swap, not a read-then-write.
func (r *ParcelDynamoRepository) MarkPaid(ctx context.Context, id, trackingID string) (entities.Parcel, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :paid, #tracking_id = :tracking_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#tracking_id": "tracking_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(entities.ParcelStatusPending)},
			":paid":        &types.AttributeValueMemberS{Value: string(entities.ParcelStatusPaid)},
			":tracking_id": &types.AttributeValueMemberS{Value: trackingID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Parcel{}, interfaces.ErrParcelNotPending
		}
		return entities.Parcel{}, err
	}

	var it parcelItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Parcel{}, err
	}
	return fromParcelItem(it), nil
}

// Delete removes a parcel, but only while it is still pending. A paid parcel
// is referenced by a ledger entry and must stay.
func (r *ParcelDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.ParcelStatusPending)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrParcelNotDeletable
		}
		return err
	}
	return nil
}

func unmarshalParcels(raw []map[string]types.AttributeValue) ([]entities.Parcel, error) {
	items := make([]entities.Parcel, 0, len(raw))
	for _, m := range raw {
		var it parcelItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromParcelItem(it))
	}
	return items, nil
}

func toParcelItem(p entities.Parcel) parcelItem {
	return parcelItem{
		ID:          p.ID,
		SenderEmail: p.SenderEmail,
		ParcelName:  p.ParcelName,
		Cost:        p.Cost,
		Status:      string(p.Status),
		TrackingID:  p.TrackingID,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromParcelItem(it parcelItem) entities.Parcel {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Parcel{
		ID:          it.ID,
		SenderEmail: it.SenderEmail,
		ParcelName:  it.ParcelName,
		Cost:        it.Cost,
		Status:      entities.ParcelStatus(it.Status),
		TrackingID:  it.TrackingID,
		CreatedAt:   createdAt,
	}
}
