package labreports

import (
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LabReportMongoRepository struct {
	Collection *mongo.Collection
}

func NewLabReportMongoRepository(db *mongo.Client, dbName string) contracts.LabReportRepository {
	return &LabReportMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLabReports),
	}
}

func (r *LabReportMongoRepository) CreateLabReport(ctx context.Context, report *models.LabReport) (string, error) {
	result, err := r.Collection.InsertOne(ctx, report)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *LabReportMongoRepository) FindByID(ctx context.Context, reportID string) (*models.LabReport, error) {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var report models.LabReport
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &report, nil
}

func (r *LabReportMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.LabReport, error) {
	opts := options.Find().SetSort(bson.M{"reportDate": -1})
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var reports []models.LabReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reports, nil
}
