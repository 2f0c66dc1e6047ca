package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/mentorhub/internal/app/models"
	"github.com/yigit/mentorhub/internal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	MentorsCollection  = "mentors"
	StudentsCollection = "students"
)

type mentorDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Expertise string             `bson:"expertise"`
}

func (d *mentorDocument) toModel() *models.Mentor {
	return &models.Mentor{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Expertise: d.Expertise,
	}
}

// studentDocument keeps mentor refs as nullable ObjectIDs; nil pointers are stored as null
type studentDocument struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"`
	Name           string              `bson:"name"`
	Course         string              `bson:"course"`
	CurrentMentor  *primitive.ObjectID `bson:"currentMentor"`
	PreviousMentor *primitive.ObjectID `bson:"previousMentor"`
}

func (d *studentDocument) toModel() *models.Student {
	return &models.Student{
		ID:               d.ID.Hex(),
		Name:             d.Name,
		Course:           d.Course,
		CurrentMentorID:  objectIDToRef(d.CurrentMentor),
		PreviousMentorID: objectIDToRef(d.PreviousMentor),
	}
}

func objectIDToRef(id *primitive.ObjectID) *string {
	if id == nil {
		return nil
	}
	return models.StringPtr(id.Hex())
}

// refToObjectID converts an optional id; ok is false when a non-nil id is malformed
func refToObjectID(ref *string) (*primitive.ObjectID, bool) {
	if ref == nil {
		return nil, true
	}
	oid, err := primitive.ObjectIDFromHex(*ref)
	if err != nil {
		return nil, false
	}
	return &oid, true
}

// MongoMentorRepository handles mentor operations on MongoDB
type MongoMentorRepository struct {
	coll *mongo.Collection
}

// NewMongoMentorRepository creates a new MongoMentorRepository
func NewMongoMentorRepository(db *mongo.Database) *MongoMentorRepository {
	return &MongoMentorRepository{coll: db.Collection(MentorsCollection)}
}

// Create inserts a new mentor; the ObjectID is generated client side
func (r *MongoMentorRepository) Create(ctx context.Context, mentor *models.Mentor) error {
	doc := mentorDocument{
		ID:        primitive.NewObjectID(),
		Name:      mentor.Name,
		Expertise: mentor.Expertise,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logger.Error().Err(err).Msg("Error inserting mentor document")
		return fmt.Errorf("error creating mentor: %w", err)
	}

	mentor.ID = doc.ID.Hex()
	return nil
}

// FindByID retrieves a mentor by ID
func (r *MongoMentorRepository) FindByID(ctx context.Context, id string) (*models.Mentor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrMentorNotFound
	}

	var doc mentorDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMentorNotFound
		}
		logger.Error().Err(err).Str("mentorID", id).Msg("Error decoding mentor document")
		return nil, fmt.Errorf("error getting mentor by ID: %w", err)
	}

	return doc.toModel(), nil
}

// MongoStudentRepository handles student operations on MongoDB
type MongoStudentRepository struct {
	coll *mongo.Collection
}

// NewMongoStudentRepository creates a new MongoStudentRepository
func NewMongoStudentRepository(db *mongo.Database) *MongoStudentRepository {
	return &MongoStudentRepository{coll: db.Collection(StudentsCollection)}
}

// Create inserts a new student
func (r *MongoStudentRepository) Create(ctx context.Context, student *models.Student) error {
	current, ok := refToObjectID(student.CurrentMentorID)
	if !ok {
		return ErrMentorNotFound
	}
	previous, ok := refToObjectID(student.PreviousMentorID)
	if !ok {
		return ErrMentorNotFound
	}

	doc := studentDocument{
		ID:             primitive.NewObjectID(),
		Name:           student.Name,
		Course:         student.Course,
		CurrentMentor:  current,
		PreviousMentor: previous,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		logger.Error().Err(err).Msg("Error inserting student document")
		return fmt.Errorf("error creating student: %w", err)
	}

	student.ID = doc.ID.Hex()
	return nil
}

// FindByID retrieves a student by ID
func (r *MongoStudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrStudentNotFound
	}

	var doc studentDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error decoding student document")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return doc.toModel(), nil
}

// AssignUnassigned runs one UpdateMany filtered on currentMentor == null.
// A null filter also matches documents where the field is missing.
func (r *MongoStudentRepository) AssignUnassigned(ctx context.Context, mentorID string, studentIDs []string) (int64, error) {
	mentor, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		return 0, ErrMentorNotFound
	}

	oids := make([]primitive.ObjectID, 0, len(studentIDs))
	for _, id := range studentIDs {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return 0, nil
	}

	filter := bson.M{
		"_id":           bson.M{"$in": oids},
		"currentMentor": nil,
	}
	update := bson.M{"$set": bson.M{"currentMentor": mentor}}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		logger.Error().Err(err).Str("mentorID", mentorID).Int("students", len(oids)).Msg("Error assigning students")
		return 0, fmt.Errorf("error assigning students: %w", err)
	}

	return res.MatchedCount, nil
}

// SwapMentor performs the compare-and-set mentor change with a single UpdateOne
func (r *MongoStudentRepository) SwapMentor(ctx context.Context, studentID string, expected *string, newMentorID string) (bool, error) {
	student, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return false, ErrStudentNotFound
	}
	mentor, err := primitive.ObjectIDFromHex(newMentorID)
	if err != nil {
		return false, ErrMentorNotFound
	}
	previous, ok := refToObjectID(expected)
	if !ok {
		return false, fmt.Errorf("stored mentor reference %q is not an ObjectID", *expected)
	}

	filter := bson.M{"_id": student, "currentMentor": previous}
	if previous == nil {
		filter["currentMentor"] = nil
	}
	update := bson.M{"$set": bson.M{
		"previousMentor": previous,
		"currentMentor":  mentor,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error changing mentor")
		return false, fmt.Errorf("error changing mentor: %w", err)
	}

	return res.MatchedCount == 1, nil
}

// FindByCurrentMentor lists the students assigned to a mentor in insertion order
func (r *MongoStudentRepository) FindByCurrentMentor(ctx context.Context, mentorID string) ([]*models.Student, error) {
	students := []*models.Student{}

	mentor, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		return students, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"currentMentor": mentor}, opts)
	if err != nil {
		logger.Error().Err(err).Str("mentorID", mentorID).Msg("Error querying students by mentor")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc studentDocument
		if err := cursor.Decode(&doc); err != nil {
			logger.Error().Err(err).Msg("Error decoding student document during list")
			return nil, fmt.Errorf("error decoding student: %w", err)
		}
		students = append(students, doc.toModel())
	}

	if err := cursor.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student cursor")
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

// NewMongoRepositories wires both mongo repositories onto one database
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		Mentors:  NewMongoMentorRepository(db),
		Students: NewMongoStudentRepository(db),
	}
}
