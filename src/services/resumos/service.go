// Package resumos mantém o snapshot persistido de cada encontro
// (total marcado, presentes, ausentes, frequência do dia), no espírito dos
// cards da lista de presença. O snapshot é refeito a cada gravação de lista
// e pode ser recalculado sob demanda.
package resumos

import (
	"context"
	"fmt"
	"time"

	DB "Backend-SGI/src/database"
	"Backend-SGI/src/models"
	"Backend-SGI/src/services/frequencia"
	"Backend-SGI/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AtualizarResumo reconta as marcações de (grupo, data) e grava o snapshot
func AtualizarResumo(grupoID primitive.ObjectID, data string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filtro := bson.M{"grupoId": grupoID, "data": data}

	marcados, err := DB.PresencaCollection.CountDocuments(ctx, filtro)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	filtroPresentes := bson.M{"grupoId": grupoID, "data": data, "presente": true}
	presentes, err := DB.PresencaCollection.CountDocuments(ctx, filtroPresentes)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	resumo := models.ResumoEncontro{
		GrupoID:    grupoID,
		Data:       data,
		Marcados:   int(marcados),
		Presentes:  int(presentes),
		Ausentes:   int(marcados - presentes),
		Frequencia: frequencia.ArredondarPercentual(int(presentes), int(marcados)),
	}

	_, err = DB.ResumoPresencaCollection.UpdateOne(ctx,
		bson.M{"grupoId": grupoID, "data": data},
		bson.M{"$set": bson.M{
			"grupoId":    resumo.GrupoID,
			"data":       resumo.Data,
			"marcados":   resumo.Marcados,
			"presentes":  resumo.Presentes,
			"ausentes":   resumo.Ausentes,
			"frequencia": resumo.Frequencia,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	return nil
}

// GetResumosPorGrupo devolve os snapshots do grupo em ordem de data
func GetResumosPorGrupo(grupoID string) ([]models.ResumoEncontro, error) {
	gID, err := primitive.ObjectIDFromHex(grupoID)
	if err != nil {
		return nil, fmt.Errorf("%w: id de grupo inválido", utils.ErrEntradaInvalida)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "data", Value: 1}})
	cursor, err := DB.ResumoPresencaCollection.Find(ctx, bson.M{"grupoId": gID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	defer cursor.Close(ctx)

	var resumosDoGrupo []models.ResumoEncontro
	if err := cursor.All(ctx, &resumosDoGrupo); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	return resumosDoGrupo, nil
}

// GetResumoPorData devolve o snapshot de um encontro específico
func GetResumoPorData(grupoID, data string) (*models.ResumoEncontro, error) {
	gID, err := primitive.ObjectIDFromHex(grupoID)
	if err != nil {
		return nil, fmt.Errorf("%w: id de grupo inválido", utils.ErrEntradaInvalida)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var resumo models.ResumoEncontro
	err = DB.ResumoPresencaCollection.FindOne(ctx, bson.M{"grupoId": gID, "data": data}).Decode(&resumo)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	return &resumo, nil
}

// RecalcularResumos refaz os snapshots de todos os encontros do grupo
func RecalcularResumos(grupoID string) error {
	gID, err := primitive.ObjectIDFromHex(grupoID)
	if err != nil {
		return fmt.Errorf("%w: id de grupo inválido", utils.ErrEntradaInvalida)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	datas, err := DB.EncontroCollection.Distinct(ctx, "data", bson.M{"grupoId": gID})
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	for _, d := range datas {
		data, ok := d.(string)
		if !ok {
			continue
		}
		if err := AtualizarResumo(gID, data); err != nil {
			return err
		}
	}
	return nil
}
