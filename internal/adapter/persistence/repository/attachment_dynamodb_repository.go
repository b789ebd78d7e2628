package repository

import (
	"context"
	"time"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const defaultUploadsTableName = "uploads"

type attachmentItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Size      int64  `dynamodbav:"size"`
	MimeType  string `dynamodbav:"mime_type"`
	Bytes     []byte `dynamodbav:"bytes"`
	ParentRef string `dynamodbav:"parent_ref"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AttachmentDynamoRepository persists Attachment rows in DynamoDB and
// links uploaded blobs to their owning entity.
//
// Table requirements:
//   - PK: id (string)
//   - GSI parent_ref-index: parent_ref = "<kind>#<parent id>"
type AttachmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAttachmentRepository = (*AttachmentDynamoRepository)(nil)

func NewAttachmentDynamoRepository(ddb *dynamodb.Client) *AttachmentDynamoRepository {
	return &AttachmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("UPLOADS_TABLE", defaultUploadsTableName),
	}
}

func (r *AttachmentDynamoRepository) Attach(ctx context.Context, parent entities.ParentRef, files []entities.FileUpload) ([]entities.Attachment, error) {
	now := time.Now().UTC()
	result := make([]entities.Attachment, 0, len(files))
	for _, f := range files {
		a := entities.Attachment{
			ID:        uuid.NewString(),
			Name:      f.Name,
			Size:      f.Size,
			MimeType:  f.MimeType,
			Bytes:     f.Bytes,
			Parent:    parent,
			CreatedAt: now,
		}
		av, err := attributevalue.MarshalMap(toAttachmentItem(a))
		if err != nil {
			return nil, err
		}
		if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.tableName),
			Item:      av,
		}); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *AttachmentDynamoRepository) Replace(ctx context.Context, parent entities.ParentRef, files []entities.FileUpload) ([]entities.Attachment, error) {
	if err := r.DeleteByParent(ctx, parent); err != nil {
		return nil, err
	}
	return r.Attach(ctx, parent, files)
}

func (r *AttachmentDynamoRepository) DeleteByParent(ctx context.Context, parent entities.ParentRef) error {
	ids, err := r.idsByParent(ctx, parent)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *AttachmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Attachment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Attachment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Attachment{}, nil
	}

	var it attachmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Attachment{}, err
	}
	return fromAttachmentItem(it), nil
}

func (r *AttachmentDynamoRepository) ListByParent(ctx context.Context, parent entities.ParentRef) ([]entities.Attachment, error) {
	var (
		result   []entities.Attachment
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.queryParentPage(ctx, parent, startKey, false)
		if err != nil {
			return nil, err
		}
		var items []attachmentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromAttachmentItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return result, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *AttachmentDynamoRepository) idsByParent(ctx context.Context, parent entities.ParentRef) ([]string, error) {
	var (
		ids      []string
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.queryParentPage(ctx, parent, startKey, true)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it struct {
				ID string `dynamodbav:"id"`
			}
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			ids = append(ids, it.ID)
		}
		if out.LastEvaluatedKey == nil {
			return ids, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *AttachmentDynamoRepository) queryParentPage(ctx context.Context, parent entities.ParentRef, startKey map[string]types.AttributeValue, keysOnly bool) (*dynamodb.QueryOutput, error) {
	in := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("parent_ref-index"),
		KeyConditionExpression:    aws.String("#parent_ref = :parent_ref"),
		ExpressionAttributeNames:  map[string]string{"#parent_ref": "parent_ref"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":parent_ref": &types.AttributeValueMemberS{Value: parent.Key()}},
		ExclusiveStartKey:         startKey,
	}
	if keysOnly {
		in.ProjectionExpression = aws.String("#id")
		in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, map[string]string{"#id": "id"})
	}
	return r.ddb.Query(ctx, in)
}

func toAttachmentItem(a entities.Attachment) attachmentItem {
	return attachmentItem{
		ID:        a.ID,
		Name:      a.Name,
		Size:      a.Size,
		MimeType:  a.MimeType,
		Bytes:     a.Bytes,
		ParentRef: a.Parent.Key(),
		CreatedAt: formatTime(a.CreatedAt),
	}
}

func fromAttachmentItem(it attachmentItem) entities.Attachment {
	return entities.Attachment{
		ID:        it.ID,
		Name:      it.Name,
		Size:      it.Size,
		MimeType:  it.MimeType,
		Bytes:     it.Bytes,
		Parent:    parseParentRef(it.ParentRef),
		CreatedAt: parseTime(it.CreatedAt),
	}
}

func parseParentRef(key string) entities.ParentRef {
	for i := 0; i < len(key); i++ {
		if key[i] == '#' {
			return entities.ParentRef{Kind: entities.ParentKind(key[:i]), ID: key[i+1:]}
		}
	}
	return entities.ParentRef{}
}
