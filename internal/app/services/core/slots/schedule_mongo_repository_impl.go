package slots

import (
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScheduleMongoRepository struct {
	Collection *mongo.Collection
}

func NewScheduleMongoRepository(db *mongo.Client, dbName string) contracts.DoctorScheduleRepository {
	return &ScheduleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctorSchedules),
	}
}

func (r *ScheduleMongoRepository) UpsertSchedule(ctx context.Context, schedule *models.DoctorSchedule) (string, error) {
	filter := bson.M{"doctorId": schedule.DoctorID}
	update := bson.M{
		"$set": bson.M{
			"dailyStartTime":      schedule.DailyStartTime,
			"dailyEndTime":        schedule.DailyEndTime,
			"slotDurationMinutes": schedule.SlotDurationMinutes,
			"breakStartTime":      schedule.BreakStartTime,
			"breakEndTime":        schedule.BreakEndTime,
			"includeWeekends":     schedule.IncludeWeekends,
			"active":              schedule.Active,
			"updatedAt":           time.Now(),
		},
		"$setOnInsert": bson.M{
			"doctorId":  schedule.DoctorID,
			"createdAt": time.Now(),
		},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", exceptions.ErrMongoDBUpdateDocument(err)
	}

	if result.UpsertedID != nil {
		return result.UpsertedID.(primitive.ObjectID).Hex(), nil
	}

	var existing models.DoctorSchedule
	if err := r.Collection.FindOne(ctx, filter).Decode(&existing); err != nil {
		return "", exceptions.ErrMongoDBFindDocument(err)
	}
	return existing.ID, nil
}

func (r *ScheduleMongoRepository) FindActiveSchedules(ctx context.Context) ([]models.DoctorSchedule, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var schedules []models.DoctorSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return schedules, nil
}

func (r *ScheduleMongoRepository) UpdateLastGeneratedDate(ctx context.Context, scheduleID, date string) error {
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"lastGeneratedDate": date, "updatedAt": time.Now()}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
