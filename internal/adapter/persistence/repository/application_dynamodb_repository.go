package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApplicationsTableName    = "applications"
	defaultAwardedListingsTableName = "awarded_listings"
)

type applicationItem struct {
	ListingVendor string `dynamodbav:"listing_vendor"`
	ID            string `dynamodbav:"id"`
	ListingID     string `dynamodbav:"listing_id"`
	VendorID      string `dynamodbav:"vendor_id"`
	Comment       string `dynamodbav:"comment,omitempty"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type awardedListingItem struct {
	ListingID     string `dynamodbav:"listing_id"`
	ID            string `dynamodbav:"id"`
	ApplicationID string `dynamodbav:"application_id"`
	VendorID      string `dynamodbav:"vendor_id"`
	DeliveryDate  string `dynamodbav:"delivery_date,omitempty"`
	Description   string `dynamodbav:"description,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// ApplicationDynamoRepository persists Application entities and the
// award transaction in DynamoDB.
//
// Applications table requirements:
//   - PK: listing_vendor = "<listing_id>#<vendor_id>"
//   - GSI id-index: id
//   - GSI listing_id-index: listing_id
//
// Awarded listings table requirements:
//   - PK: listing_id
//
// We purposely key applications by the (listing, vendor) pair so the
// one-application rule is a conditional put, and the award table by
// listing id so "one award per listing" is attribute_not_exists.
type ApplicationDynamoRepository struct {
	ddb               *dynamodb.Client
	tableName         string
	listingsTableName string
	awardsTableName   string
}

var _ interfaces.IApplicationRepository = (*ApplicationDynamoRepository)(nil)

func NewApplicationDynamoRepository(ddb *dynamodb.Client) *ApplicationDynamoRepository {
	return &ApplicationDynamoRepository{
		ddb:               ddb,
		tableName:         getenvDefault("APPLICATIONS_TABLE", defaultApplicationsTableName),
		listingsTableName: getenvDefault("LISTINGS_TABLE", defaultListingsTableName),
		awardsTableName:   getenvDefault("AWARDED_LISTINGS_TABLE", defaultAwardedListingsTableName),
	}
}

func listingVendorKey(listingID, vendorID string) string {
	return fmt.Sprintf("%s#%s", listingID, vendorID)
}

func (r *ApplicationDynamoRepository) Create(ctx context.Context, a entities.Application) (entities.Application, error) {
	av, err := attributevalue.MarshalMap(toApplicationItem(a))
	if err != nil {
		return entities.Application{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{"#pk": "listing_vendor"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// The pair already applied; the caller reports the conflict.
			return entities.Application{}, nil
		}
		return entities.Application{}, err
	}
	return a, nil
}

func (r *ApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Application, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("id-index"),
		KeyConditionExpression:    aws.String("#id = :id"),
		ExpressionAttributeNames:  map[string]string{"#id": "id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":id": &types.AttributeValueMemberS{Value: id}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return entities.Application{}, err
	}
	if len(out.Items) == 0 {
		return entities.Application{}, nil
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Application{}, err
	}
	return fromApplicationItem(it), nil
}

func (r *ApplicationDynamoRepository) GetByIDAndVendor(ctx context.Context, id, vendorID string) (entities.Application, error) {
	a, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Application{}, err
	}
	if a.ID == "" || a.VendorID != vendorID {
		return entities.Application{}, nil
	}
	return a, nil
}

func (r *ApplicationDynamoRepository) ListByListingID(ctx context.Context, listingID string) ([]entities.Application, error) {
	var (
		result   []entities.Application
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String("listing_id-index"),
			KeyConditionExpression:    aws.String("#listing_id = :listing_id"),
			ExpressionAttributeNames:  map[string]string{"#listing_id": "listing_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":listing_id": &types.AttributeValueMemberS{Value: listingID}},
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []applicationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromApplicationItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return result, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ApplicationDynamoRepository) UpdateStatusIf(ctx context.Context, listingID, vendorID string, from, to entities.ApplicationStatus) (entities.Application, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"listing_vendor": &types.AttributeValueMemberS{Value: listingVendorKey(listingID, vendorID)},
		},
		ConditionExpression: aws.String("attribute_exists(#pk) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#pk":         "listing_vendor",
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
			return entities.Application{}, nil
		}
		return entities.Application{}, err
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Application{}, err
	}
	return fromApplicationItem(it), nil
}

// Award runs the three award writes as one transaction:
//
//  1. application status → AWARDED, conditional on it still being
//     PENDING;
//  2. listing status → AWARDED, conditional on it not being AWARDED
//     yet;
//  3. put of the single award row, conditional on none existing.
//
// When any condition fails the whole transaction is cancelled and the
// caller gets won=false: a concurrent reviewer already took the award.
func (r *ApplicationDynamoRepository) Award(ctx context.Context, a entities.Application, award entities.AwardedListing) (bool, error) {
	awardAV, err := attributevalue.MarshalMap(toAwardedListingItem(award))
	if err != nil {
		return false, err
	}

	now := formatTime(time.Now())
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"listing_vendor": &types.AttributeValueMemberS{Value: listingVendorKey(a.ListingID, a.VendorID)},
					},
					ConditionExpression: aws.String("attribute_exists(#pk) AND #status = :pending"),
					UpdateExpression:    aws.String("SET #status = :awarded, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#pk":         "listing_vendor",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":pending":    &types.AttributeValueMemberS{Value: string(entities.ApplicationStatusPending)},
						":awarded":    &types.AttributeValueMemberS{Value: string(entities.ApplicationStatusAwarded)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.listingsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: a.ListingID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :awarded"),
					UpdateExpression:    aws.String("SET #status = :awarded, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":awarded":    &types.AttributeValueMemberS{Value: string(entities.ListingStatusAwarded)},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.awardsTableName),
					Item:                     awardAV,
					ConditionExpression:      aws.String("attribute_not_exists(#listing_id)"),
					ExpressionAttributeNames: map[string]string{"#listing_id": "listing_id"},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return false, nil
				}
			}
		}
		return false, err
	}
	return true, nil
}

func toApplicationItem(a entities.Application) applicationItem {
	return applicationItem{
		ListingVendor: listingVendorKey(a.ListingID, a.VendorID),
		ID:            a.ID,
		ListingID:     a.ListingID,
		VendorID:      a.VendorID,
		Comment:       a.Comment,
		Status:        string(a.Status),
		CreatedAt:     formatTime(a.CreatedAt),
		UpdatedAt:     formatTime(a.UpdatedAt),
	}
}

func fromApplicationItem(it applicationItem) entities.Application {
	return entities.Application{
		ID:        it.ID,
		ListingID: it.ListingID,
		VendorID:  it.VendorID,
		Comment:   it.Comment,
		Status:    entities.ApplicationStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func toAwardedListingItem(a entities.AwardedListing) awardedListingItem {
	it := awardedListingItem{
		ListingID:     a.ListingID,
		ID:            a.ID,
		ApplicationID: a.ApplicationID,
		VendorID:      a.VendorID,
		Description:   a.Description,
		CreatedAt:     formatTime(a.CreatedAt),
	}
	if a.DeliveryDate != nil {
		it.DeliveryDate = formatTime(*a.DeliveryDate)
	}
	return it
}
