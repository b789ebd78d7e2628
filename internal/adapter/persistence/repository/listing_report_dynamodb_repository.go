package repository

import (
	"context"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultListingReportsTableName = "listing_reports"

type listingReportItem struct {
	ID            string `dynamodbav:"id"`
	ListingID     string `dynamodbav:"listing_id"`
	ApplicationID string `dynamodbav:"application_id"`
	VendorID      string `dynamodbav:"vendor_id"`
	Comment       string `dynamodbav:"comment"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// ListingReportDynamoRepository persists ListingReport entities in
// DynamoDB. Reports are append-only.
//
// Table requirements:
//   - PK: id (string)
//   - GSI application_id-index: application_id
type ListingReportDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IListingReportRepository = (*ListingReportDynamoRepository)(nil)

func NewListingReportDynamoRepository(ddb *dynamodb.Client) *ListingReportDynamoRepository {
	return &ListingReportDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LISTING_REPORTS_TABLE", defaultListingReportsTableName),
	}
}

func (r *ListingReportDynamoRepository) Create(ctx context.Context, rep entities.ListingReport) (entities.ListingReport, error) {
	av, err := attributevalue.MarshalMap(listingReportItem{
		ID:            rep.ID,
		ListingID:     rep.ListingID,
		ApplicationID: rep.ApplicationID,
		VendorID:      rep.VendorID,
		Comment:       rep.Comment,
		CreatedAt:     formatTime(rep.CreatedAt),
	})
	if err != nil {
		return entities.ListingReport{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.ListingReport{}, err
	}
	return rep, nil
}

func (r *ListingReportDynamoRepository) ListByApplicationID(ctx context.Context, applicationID string) ([]entities.ListingReport, error) {
	var (
		result   []entities.ListingReport
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String("application_id-index"),
			KeyConditionExpression:    aws.String("#application_id = :application_id"),
			ExpressionAttributeNames:  map[string]string{"#application_id": "application_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":application_id": &types.AttributeValueMemberS{Value: applicationID}},
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		var items []listingReportItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, entities.ListingReport{
				ID:            it.ID,
				ListingID:     it.ListingID,
				ApplicationID: it.ApplicationID,
				VendorID:      it.VendorID,
				Comment:       it.Comment,
				CreatedAt:     parseTime(it.CreatedAt),
			})
		}
		if out.LastEvaluatedKey == nil {
			return result, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
