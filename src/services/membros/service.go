package membros

import (
	"context"
	"fmt"
	"time"

	DB "Backend-SGI/src/database"
	"Backend-SGI/src/models"
	"Backend-SGI/src/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// CreateMembro cadastra um membro
func CreateMembro(membro *models.Membro) error {
	if err := validate.Struct(membro); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrEntradaInvalida, err)
	}

	membro.ID = primitive.NewObjectID()
	_, err := DB.MembroCollection.InsertOne(context.Background(), membro)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	return nil
}

// GetAllMembros lista membros com paginação, busca por nome e filtro de situação
func GetAllMembros(params models.PaginationParams, situacao string) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["nome"] = bson.M{"$regex": params.Search, "$options": "i"}
	}
	if situacao != "" {
		filter["situacao"] = situacao
	}

	total, err := DB.MembroCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := DB.MembroCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	defer cursor.Close(ctx)

	var membros []models.Membro
	if err := cursor.All(ctx, &membros); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	return models.NewPaginatedResponse(membros, total, params), nil
}

// GetMembroByID busca um membro pelo ID
func GetMembroByID(id string) (*models.Membro, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id de membro inválido", utils.ErrEntradaInvalida)
	}

	var membro models.Membro
	err = DB.MembroCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&membro)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	return &membro, nil
}

// UpdateMembro atualiza um membro
func UpdateMembro(id string, membro *models.Membro) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: id de membro inválido", utils.ErrEntradaInvalida)
	}
	if err := validate.Struct(membro); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrEntradaInvalida, err)
	}

	membro.ID = objID
	res, err := DB.MembroCollection.UpdateOne(context.Background(), bson.M{"_id": objID}, bson.M{"$set": membro})
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	if res.MatchedCount == 0 {
		return utils.ErrNaoEncontrado
	}
	return nil
}

// DeleteMembro remove um membro
func DeleteMembro(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: id de membro inválido", utils.ErrEntradaInvalida)
	}

	res, err := DB.MembroCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	if res.DeletedCount == 0 {
		return utils.ErrNaoEncontrado
	}
	return nil
}
