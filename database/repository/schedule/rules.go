// File: database/repository/schedule/rules.go
package scheduleRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachly/models"
)

func (r *mongoScheduleRepo) CreateRule(ctx context.Context, rule *models.RecurringRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	rule.CreatedAt = now
	rule.UpdatedAt = now

	_, err := r.rulesColl.InsertOne(ctx, rule)
	return err
}

func (r *mongoScheduleRepo) GetRuleByID(ctx context.Context, id string) (*models.RecurringRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rule models.RecurringRule
	if err := r.rulesColl.FindOne(ctx, bson.M{"id": id}).Decode(&rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *mongoScheduleRepo) ListRulesByCoach(ctx context.Context, coachID string) ([]models.RecurringRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.rulesColl.Find(ctx, bson.M{"coachId": coachID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.RecurringRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// ListActiveRules returns the active rules for one coach, weekday, and
// session type; the primary read of the availability path.
func (r *mongoScheduleRepo) ListActiveRules(ctx context.Context, coachID, sessionType string, dayOfWeek int) ([]models.RecurringRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"coachId":     coachID,
		"sessionType": sessionType,
		"dayOfWeek":   dayOfWeek,
		"isActive":    true,
	}
	cursor, err := r.rulesColl.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.RecurringRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *mongoScheduleRepo) UpdateRule(ctx context.Context, id string, updates map[string]interface{}) (*models.RecurringRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updates["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var rule models.RecurringRule
	err := r.rulesColl.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": updates}, opts).Decode(&rule)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *mongoScheduleRepo) DeleteRule(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.rulesColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
