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

// ScoreSortKey builds the range key for a hole score row. The natural key
// (userId, round, hole) maps to PK=userId, SK=r#<round>#h#<hole> so a write
// to the same hole replaces the previous entry instead of adding a row.
func ScoreSortKey(round, hole int) string {
	return fmt.Sprintf("r#%d#h#%d", round, hole)
}

func roundPrefix(round int) string {
	return fmt.Sprintf("r#%d#", round)
}

type HoleScoreStorage interface {
	Put(ctx context.Context, score *HoleScore) error
	Get(ctx context.Context, userID string, round, hole int) (*HoleScore, error)
	GetByPlayerRound(ctx context.Context, userID string, round int) ([]*HoleScore, error)
	GetByTeamRound(ctx context.Context, teamID, round int) ([]*HoleScore, error)
	GetAll(ctx context.Context) ([]*HoleScore, error)
}

type DynamoHoleScoreStorage struct {
	Client    *dynamodb.Client
	TableName string
}

// Put is an upsert: score edits for a hole overwrite the existing row,
// last write wins per (userId, round, hole).
func (s *DynamoHoleScoreStorage) Put(ctx context.Context, score *HoleScore) error {
	score.SortKey = ScoreSortKey(score.Round, score.Hole)
	score.UpdatedAt = time.Now().UTC()

	item, err := attributevalue.MarshalMap(score)
	if err != nil {
		logging.Log.Errorf("SCORE: failed to marshal hole score: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("SCORE: failed to put hole score for %s %s: %v", score.UserID, score.SortKey, err)
		return err
	}
	return nil
}

func (s *DynamoHoleScoreStorage) Get(ctx context.Context, userID string, round, hole int) (*HoleScore, error) {
	key, err := attributevalue.MarshalMap(map[string]string{
		"PK": userID,
		"SK": ScoreSortKey(round, hole),
	})
	if err != nil {
		logging.Log.Errorf("SCORE: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("SCORE: GetItem failed for %s r%d h%d: %v", userID, round, hole, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var score HoleScore
	if err := attributevalue.UnmarshalMap(out.Item, &score); err != nil {
		logging.Log.Errorf("SCORE: failed to unmarshal hole score: %v", err)
		return nil, err
	}
	return &score, nil
}

func (s *DynamoHoleScoreStorage) GetByPlayerRound(ctx context.Context, userID string, round int) ([]*HoleScore, error) {
	input := &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :uid AND begins_with(SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":    &types.AttributeValueMemberS{Value: userID},
			":prefix": &types.AttributeValueMemberS{Value: roundPrefix(round)},
		},
	}

	out, err := s.Client.Query(ctx, input)
	if err != nil {
		logging.Log.Errorf("SCORE: failed to query scores for player %s round %d: %v", userID, round, err)
		return nil, err
	}

	var scores []*HoleScore
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &scores); err != nil {
		logging.Log.Errorf("SCORE: failed to unmarshal score list: %v", err)
		return nil, err
	}
	return scores, nil
}

func (s *DynamoHoleScoreStorage) GetByTeamRound(ctx context.Context, teamID, round int) ([]*HoleScore, error) {
	input := &dynamodb.ScanInput{
		TableName:        &s.TableName,
		FilterExpression: aws.String("TeamID = :tid AND #r = :round"),
		ExpressionAttributeNames: map[string]string{
			"#r": "Round",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid":   &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", teamID)},
			":round": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", round)},
		},
	}

	out, err := s.Client.Scan(ctx, input)
	if err != nil {
		logging.Log.Errorf("SCORE: failed to scan scores for team %d round %d: %v", teamID, round, err)
		return nil, err
	}

	var scores []*HoleScore
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &scores); err != nil {
		logging.Log.Errorf("SCORE: failed to unmarshal team score list: %v", err)
		return nil, err
	}
	return scores, nil
}

func (s *DynamoHoleScoreStorage) GetAll(ctx context.Context) ([]*HoleScore, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("SCORE: scan failed: %v", err)
		return nil, err
	}

	var scores []*HoleScore
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &scores); err != nil {
		logging.Log.Errorf("SCORE: failed to unmarshal score list: %v", err)
		return nil, err
	}
	return scores, nil
}
