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

const defaultListingsTableName = "listings"

type listingItem struct {
	ID               string   `dynamodbav:"id"`
	Name             string   `dynamodbav:"name"`
	Description      string   `dynamodbav:"description"`
	CategoryID       string   `dynamodbav:"category_id"`
	Status           string   `dynamodbav:"status"`
	AllowedVendorIDs []string `dynamodbav:"allowed_vendor_ids,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
	UpdatedAt        string   `dynamodbav:"updated_at"`
}

// ListingDynamoRepository persists Listing entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status writes go through UpdateStatusIf, a compare-and-swap on the
// status attribute; the award transaction in the application repository
// touches this table with the same condition.
type ListingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IListingRepository = (*ListingDynamoRepository)(nil)

func NewListingDynamoRepository(ddb *dynamodb.Client) *ListingDynamoRepository {
	return &ListingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LISTINGS_TABLE", defaultListingsTableName),
	}
}

func (r *ListingDynamoRepository) Create(ctx context.Context, l entities.Listing) (entities.Listing, error) {
	av, err := attributevalue.MarshalMap(toListingItem(l))
	if err != nil {
		return entities.Listing{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Listing{}, err
	}
	return l, nil
}

func (r *ListingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Listing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Listing{}, err
	}
	if len(out.Item) == 0 {
		return entities.Listing{}, nil
	}

	var it listingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Listing{}, err
	}
	return fromListingItem(it), nil
}

func (r *ListingDynamoRepository) List(ctx context.Context) ([]entities.Listing, error) {
	var (
		result   []entities.Listing
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
		var items []listingItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromListingItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return result, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ListingDynamoRepository) Update(ctx context.Context, l entities.Listing) (entities.Listing, error) {
	allowed, err := attributevalue.Marshal(l.AllowedVendorIDs)
	if err != nil {
		return entities.Listing{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: l.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #name = :name, #description = :description, #category_id = :category_id, #allowed = :allowed, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#name":        "name",
			"#description": "description",
			"#category_id": "category_id",
			"#allowed":     "allowed_vendor_ids",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":        &types.AttributeValueMemberS{Value: l.Name},
			":description": &types.AttributeValueMemberS{Value: l.Description},
			":category_id": &types.AttributeValueMemberS{Value: l.CategoryID},
			":allowed":     allowed,
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(l.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Listing{}, nil
		}
		return entities.Listing{}, err
	}

	var it listingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Listing{}, err
	}
	return fromListingItem(it), nil
}

func (r *ListingDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ListingDynamoRepository) UpdateStatusIf(ctx context.Context, id string, from, to entities.ListingStatus) (entities.Listing, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Listing{}, nil
		}
		return entities.Listing{}, err
	}

	var it listingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Listing{}, err
	}
	return fromListingItem(it), nil
}

func (r *ListingDynamoRepository) ExistsByCategoryID(ctx context.Context, categoryID string) (bool, error) {
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String("#category_id = :category_id"),
			ExpressionAttributeNames:  map[string]string{"#category_id": "category_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":category_id": &types.AttributeValueMemberS{Value: categoryID}},
			Select:                    types.SelectCount,
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return false, err
		}
		if out.Count > 0 {
			return true, nil
		}
		if out.LastEvaluatedKey == nil {
			return false, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toListingItem(l entities.Listing) listingItem {
	return listingItem{
		ID:               l.ID,
		Name:             l.Name,
		Description:      l.Description,
		CategoryID:       l.CategoryID,
		Status:           string(l.Status),
		AllowedVendorIDs: l.AllowedVendorIDs,
		CreatedAt:        formatTime(l.CreatedAt),
		UpdatedAt:        formatTime(l.UpdatedAt),
	}
}

func fromListingItem(it listingItem) entities.Listing {
	return entities.Listing{
		ID:               it.ID,
		Name:             it.Name,
		Description:      it.Description,
		CategoryID:       it.CategoryID,
		Status:           entities.ListingStatus(it.Status),
		AllowedVendorIDs: it.AllowedVendorIDs,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
