package repository

import (
	"context"
	"errors"
	"time"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVendorsTableName = "vendors"

type vendorItem struct {
	ID               string `dynamodbav:"id"`
	UserID           string `dynamodbav:"user_id"`
	BusinessName     string `dynamodbav:"business_name"`
	Category         string `dynamodbav:"category,omitempty"`
	Email            string `dynamodbav:"email"`
	PhoneNumber      string `dynamodbav:"phone_number"`
	OtherPhoneNumber string `dynamodbav:"other_phone_number,omitempty"`
	Address          string `dynamodbav:"address,omitempty"`
	Status           string `dynamodbav:"status"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// VendorDynamoRepository persists Vendor entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI email-index: email
//   - GSI phone_number-index: phone_number
//
// CreateWithAccount is a TransactWriteItems spanning the users, vendors,
// and uploads tables so onboarding is all-or-nothing.
type VendorDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	usersTableName   string
	uploadsTableName string
}

var _ interfaces.IVendorRepository = (*VendorDynamoRepository)(nil)

func NewVendorDynamoRepository(ddb *dynamodb.Client) *VendorDynamoRepository {
	return &VendorDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("VENDORS_TABLE", defaultVendorsTableName),
		usersTableName:   getenvDefault("USERS_TABLE", defaultUsersTableName),
		uploadsTableName: getenvDefault("UPLOADS_TABLE", defaultUploadsTableName),
	}
}

func (r *VendorDynamoRepository) CreateWithAccount(ctx context.Context, u entities.User, v entities.Vendor, uploads []entities.Attachment) (entities.Vendor, error) {
	userAV, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.Vendor{}, err
	}
	vendorAV, err := attributevalue.MarshalMap(toVendorItem(v))
	if err != nil {
		return entities.Vendor{}, err
	}

	writes := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.usersTableName),
				Item:                     userAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
		{
			Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     vendorAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		},
	}
	for _, a := range uploads {
		av, err := attributevalue.MarshalMap(toAttachmentItem(a))
		if err != nil {
			return entities.Vendor{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.uploadsTableName),
				Item:      av,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		return entities.Vendor{}, err
	}
	return v, nil
}

func (r *VendorDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vendor, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Vendor{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vendor{}, nil
	}

	var it vendorItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vendor{}, err
	}
	return fromVendorItem(it), nil
}

func (r *VendorDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Vendor, error) {
	return r.queryOne(ctx, "email-index", "email", email)
}

func (r *VendorDynamoRepository) GetByPhoneNumber(ctx context.Context, phoneNumber string) (entities.Vendor, error) {
	return r.queryOne(ctx, "phone_number-index", "phone_number", phoneNumber)
}

func (r *VendorDynamoRepository) List(ctx context.Context) ([]entities.Vendor, error) {
	var (
		result   []entities.Vendor
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []vendorItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromVendorItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return result, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *VendorDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.VendorStatus) (entities.Vendor, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Vendor{}, nil
		}
		return entities.Vendor{}, err
	}

	var it vendorItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Vendor{}, err
	}
	return fromVendorItem(it), nil
}

func (r *VendorDynamoRepository) queryOne(ctx context.Context, index, attr, value string) (entities.Vendor, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#k = :v"),
		ExpressionAttributeNames:  map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return entities.Vendor{}, err
	}
	if len(out.Items) == 0 {
		return entities.Vendor{}, nil
	}

	var it vendorItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Vendor{}, err
	}
	return fromVendorItem(it), nil
}

func toVendorItem(v entities.Vendor) vendorItem {
	return vendorItem{
		ID:               v.ID,
		UserID:           v.UserID,
		BusinessName:     v.BusinessName,
		Category:         v.Category,
		Email:            v.Email,
		PhoneNumber:      v.PhoneNumber,
		OtherPhoneNumber: v.OtherPhoneNumber,
		Address:          v.Address,
		Status:           string(v.Status),
		CreatedAt:        formatTime(v.CreatedAt),
		UpdatedAt:        formatTime(v.UpdatedAt),
	}
}

func fromVendorItem(it vendorItem) entities.Vendor {
	return entities.Vendor{
		ID:               it.ID,
		UserID:           it.UserID,
		BusinessName:     it.BusinessName,
		Category:         it.Category,
		Email:            it.Email,
		PhoneNumber:      it.PhoneNumber,
		OtherPhoneNumber: it.OtherPhoneNumber,
		Address:          it.Address,
		Status:           entities.VendorStatus(it.Status),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
