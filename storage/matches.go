package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/NickyGee44/TheGambler-sub000/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MatchSortKey builds the range key for a segment match. Participants are
// fixed once created, so the key is stable for the life of the match.
func MatchSortKey(segment, player1ID, player2ID string) string {
	return fmt.Sprintf("seg#%s#%s#%s", segment, player1ID, player2ID)
}

type MatchStorage interface {
	Put(ctx context.Context, match *MatchPlayMatch) error
	GetByGroup(ctx context.Context, groupNumber int) ([]*MatchPlayMatch, error)
	GetByPlayer(ctx context.Context, playerID string) ([]*MatchPlayMatch, error)
	GetAll(ctx context.Context) ([]*MatchPlayMatch, error)
}

type DynamoMatchStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoMatchStorage) Put(ctx context.Context, match *MatchPlayMatch) error {
	match.SortKey = MatchSortKey(match.HoleSegment, match.Player1ID, match.Player2ID)
	if match.CreatedAt.IsZero() {
		match.CreatedAt = time.Now().UTC()
	}

	item, err := attributevalue.MarshalMap(match)
	if err != nil {
		logging.Log.Errorf("MATCH: failed to marshal match: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("MATCH: failed to put match group %d segment %s: %v", match.GroupNumber, match.HoleSegment, err)
		return err
	}
	return nil
}

func (s *DynamoMatchStorage) GetByGroup(ctx context.Context, groupNumber int) ([]*MatchPlayMatch, error) {
	input := &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :group"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":group": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", groupNumber)},
		},
	}

	out, err := s.Client.Query(ctx, input)
	if err != nil {
		logging.Log.Errorf("MATCH: failed to query matches for group %d: %v", groupNumber, err)
		return nil, err
	}

	var matches []*MatchPlayMatch
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &matches); err != nil {
		logging.Log.Errorf("MATCH: failed to unmarshal match list: %v", err)
		return nil, err
	}
	return matches, nil
}

func (s *DynamoMatchStorage) GetByPlayer(ctx context.Context, playerID string) ([]*MatchPlayMatch, error) {
	input := &dynamodb.ScanInput{
		TableName:        &s.TableName,
		FilterExpression: aws.String("Player1ID = :pid OR Player2ID = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: playerID},
		},
	}

	out, err := s.Client.Scan(ctx, input)
	if err != nil {
		logging.Log.Errorf("MATCH: failed to scan matches for player %s: %v", playerID, err)
		return nil, err
	}

	var matches []*MatchPlayMatch
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &matches); err != nil {
		logging.Log.Errorf("MATCH: failed to unmarshal match list: %v", err)
		return nil, err
	}
	return matches, nil
}

func (s *DynamoMatchStorage) GetAll(ctx context.Context) ([]*MatchPlayMatch, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("MATCH: scan failed: %v", err)
		return nil, err
	}

	var matches []*MatchPlayMatch
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &matches); err != nil {
		logging.Log.Errorf("MATCH: failed to unmarshal match list: %v", err)
		return nil, err
	}
	return matches, nil
}
