package repository

import (
	"context"
	"errors"

	"zoracom_vms/internal/domain/entities"
	"zoracom_vms/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvitesTableName = "invites"

type inviteItem struct {
	InviteToken string `dynamodbav:"invite_token"`
	ID          string `dynamodbav:"id"`
	Email       string `dynamodbav:"email"`
	ExpiresAt   string `dynamodbav:"expires_at"`
	Valid       bool   `dynamodbav:"valid"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// InviteDynamoRepository persists Invite entities in DynamoDB.
//
// Table requirements:
//   - PK: invite_token (string)
//
// The opaque token is the key, so validation is a point read and
// consumption is a conditional delete. Two racing consumers resolve to
// one effective deletion; the condition failure on the other side is
// swallowed as a no-op.
type InviteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInviteRepository = (*InviteDynamoRepository)(nil)

func NewInviteDynamoRepository(ddb *dynamodb.Client) *InviteDynamoRepository {
	return &InviteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVITES_TABLE", defaultInvitesTableName),
	}
}

func (r *InviteDynamoRepository) Create(ctx context.Context, i entities.Invite) (entities.Invite, error) {
	av, err := attributevalue.MarshalMap(inviteItem{
		InviteToken: i.InviteToken,
		ID:          i.ID,
		Email:       i.Email,
		ExpiresAt:   formatTime(i.ExpiresAt),
		Valid:       i.Valid,
		CreatedAt:   formatTime(i.CreatedAt),
	})
	if err != nil {
		return entities.Invite{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{"#token": "invite_token"},
	})
	if err != nil {
		return entities.Invite{}, err
	}
	return i, nil
}

func (r *InviteDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Invite, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"invite_token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invite{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invite{}, nil
	}

	var it inviteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invite{}, err
	}
	return fromInviteItem(it), nil
}

func (r *InviteDynamoRepository) Invalidate(ctx context.Context, token string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"invite_token": &types.AttributeValueMemberS{Value: token},
		},
		ConditionExpression: aws.String("attribute_exists(#token)"),
		UpdateExpression:    aws.String("SET #valid = :valid"),
		ExpressionAttributeNames: map[string]string{
			"#token": "invite_token",
			"#valid": "valid",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":valid": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Already consumed by a racing registration; nothing to
			// invalidate.
			return nil
		}
		return err
	}
	return nil
}

func (r *InviteDynamoRepository) Delete(ctx context.Context, email, token string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"invite_token": &types.AttributeValueMemberS{Value: token},
		},
		ConditionExpression: aws.String("attribute_exists(#token) AND #email = :email"),
		ExpressionAttributeNames: map[string]string{
			"#token": "invite_token",
			"#email": "email",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func fromInviteItem(it inviteItem) entities.Invite {
	return entities.Invite{
		ID:          it.ID,
		Email:       it.Email,
		InviteToken: it.InviteToken,
		ExpiresAt:   parseTime(it.ExpiresAt),
		Valid:       it.Valid,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
