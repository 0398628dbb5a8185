package audit

import (
	"context"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type auditMongoRepository struct {
	Actions     *mongo.Collection
	Submissions *mongo.Collection
}

func NewAuditMongoRepository(db *mongo.Database) contracts.AuditRepository {
	return &auditMongoRepository{
		Actions:     db.Collection(constvars.MongoCollectionWorkflowAudit),
		Submissions: db.Collection(constvars.MongoCollectionSubmissionReceipts),
	}
}

func (r *auditMongoRepository) RecordWorkflowAction(ctx context.Context, entry *models.WorkflowAuditEntry) error {
	_, err := r.Actions.InsertOne(ctx, entry)
	if err != nil {
		return exceptions.ErrMongoInsert(err, constvars.MongoCollectionWorkflowAudit)
	}
	return nil
}

func (r *auditMongoRepository) RecordSubmission(ctx context.Context, receipt *models.SubmissionReceipt) error {
	_, err := r.Submissions.InsertOne(ctx, receipt)
	if err != nil {
		return exceptions.ErrMongoInsert(err, constvars.MongoCollectionSubmissionReceipts)
	}
	return nil
}

func (r *auditMongoRepository) ListWorkflowActions(ctx context.Context, applicationID int) ([]models.WorkflowAuditEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "occurred_at", Value: -1}})
	cursor, err := r.Actions.Find(ctx, bson.M{"application_id": applicationID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.WorkflowAuditEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
