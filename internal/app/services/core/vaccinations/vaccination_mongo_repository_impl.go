package vaccinations

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

type VaccinationMongoRepository struct {
	Collection *mongo.Collection
}

func NewVaccinationMongoRepository(db *mongo.Client, dbName string) contracts.VaccinationRepository {
	return &VaccinationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionVaccinations),
	}
}

func (r *VaccinationMongoRepository) CreateVaccination(ctx context.Context, vaccination *models.Vaccination) (string, error) {
	result, err := r.Collection.InsertOne(ctx, vaccination)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *VaccinationMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Vaccination, error) {
	opts := options.Find().SetSort(bson.M{"administeredDate": 1})
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var vaccinations []models.Vaccination
	if err := cursor.All(ctx, &vaccinations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return vaccinations, nil
}
