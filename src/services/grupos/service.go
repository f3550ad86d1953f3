package grupos

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

// CreateGrupo cria um grupo de crescimento
func CreateGrupo(grupo *models.Grupo) error {
	if err := validate.Struct(grupo); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrEntradaInvalida, err)
	}

	grupo.ID = primitive.NewObjectID()
	_, err := DB.GrupoCollection.InsertOne(context.Background(), grupo)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	return nil
}

// GetAllGrupos lista grupos com paginação e busca por nome
func GetAllGrupos(params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		filter["nome"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.GrupoCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := DB.GrupoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	defer cursor.Close(ctx)

	var grupos []models.Grupo
	if err := cursor.All(ctx, &grupos); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	return models.NewPaginatedResponse(grupos, total, params), nil
}

// GetGrupoByID busca um grupo pelo ID
func GetGrupoByID(id string) (*models.Grupo, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: id de grupo inválido", utils.ErrEntradaInvalida)
	}

	var grupo models.Grupo
	err = DB.GrupoCollection.FindOne(context.Background(), bson.M{"_id": objID}).Decode(&grupo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	return &grupo, nil
}

// UpdateGrupo atualiza um grupo existente
func UpdateGrupo(id string, grupo *models.Grupo) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: id de grupo inválido", utils.ErrEntradaInvalida)
	}
	if err := validate.Struct(grupo); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrEntradaInvalida, err)
	}

	grupo.ID = objID
	res, err := DB.GrupoCollection.UpdateOne(context.Background(), bson.M{"_id": objID}, bson.M{"$set": grupo})
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	if res.MatchedCount == 0 {
		return utils.ErrNaoEncontrado
	}
	return nil
}

// DeleteGrupo remove um grupo
func DeleteGrupo(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: id de grupo inválido", utils.ErrEntradaInvalida)
	}

	res, err := DB.GrupoCollection.DeleteOne(context.Background(), bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	if res.DeletedCount == 0 {
		return utils.ErrNaoEncontrado
	}
	return nil
}

// GetRoster devolve o roster vivo do grupo (membros Ativos e Visitantes),
// ordenado por nome. O motor de frequência consome sempre esta função, nunca
// uma cópia em cache.
func GetRoster(grupoID string) ([]models.MembroRoster, error) {
	objID, err := primitive.ObjectIDFromHex(grupoID)
	if err != nil {
		return nil, fmt.Errorf("%w: id de grupo inválido", utils.ErrEntradaInvalida)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// o grupo precisa existir antes de montar o roster
	count, err := DB.GrupoCollection.CountDocuments(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	if count == 0 {
		return nil, utils.ErrNaoEncontrado
	}

	filter := bson.M{
		"grupoId":  objID,
		"situacao": bson.M{"$in": []string{models.SituacaoAtivo, models.SituacaoVisitante}},
	}
	opts := options.Find().SetSort(bson.D{{Key: "nome", Value: 1}})

	cursor, err := DB.MembroCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	defer cursor.Close(ctx)

	var roster []models.MembroRoster
	if err := cursor.All(ctx, &roster); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	return roster, nil
}
