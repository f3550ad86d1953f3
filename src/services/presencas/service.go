// Package presencas é o armazenamento canônico dos fatos de presença:
// um booleano por (grupo, membro, data), gravado por upsert idempotente.
package presencas

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	DB "Backend-SGI/src/database"
	"Backend-SGI/src/models"
	"Backend-SGI/src/services/grupos"
	"Backend-SGI/src/services/resumos"
	"Backend-SGI/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// trava por (grupoId, data): duas listas simultâneas para o mesmo encontro
// não podem intercalar registros individuais
var travas sync.Map

func travaDoEncontro(grupoID, data string) *sync.Mutex {
	mu, _ := travas.LoadOrStore(grupoID+"|"+data, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// prepararRegistros valida as entradas contra o roster e monta os registros a
// gravar, ordenados por membroId para saída determinística. Qualquer membro
// fora do roster invalida a lista inteira: nada é gravado.
func prepararRegistros(grupoID primitive.ObjectID, data string, roster []models.MembroRoster, entradas map[string]bool) ([]models.Presenca, error) {
	if len(entradas) == 0 {
		return nil, fmt.Errorf("%w: lista de presença sem marcações", utils.ErrEntradaInvalida)
	}

	noRoster := make(map[string]bool, len(roster))
	for _, m := range roster {
		noRoster[m.MembroID.Hex()] = true
	}

	registros := make([]models.Presenca, 0, len(entradas))
	for membroHex, presente := range entradas {
		membroID, err := primitive.ObjectIDFromHex(membroHex)
		if err != nil {
			return nil, fmt.Errorf("%w: id de membro inválido: %s", utils.ErrEntradaInvalida, membroHex)
		}
		if !noRoster[membroHex] {
			return nil, fmt.Errorf("%w: membro %s não pertence ao roster do grupo", utils.ErrEntradaInvalida, membroHex)
		}
		registros = append(registros, models.Presenca{
			GrupoID:  grupoID,
			MembroID: membroID,
			Data:     data,
			Presente: presente,
		})
	}

	sort.Slice(registros, func(i, j int) bool {
		return registros[i].MembroID.Hex() < registros[j].MembroID.Hex()
	})
	return registros, nil
}

// modelosDeUpsert converte os registros em upserts chaveados pela tripla
// (grupoId, membroId, data). Gravar a mesma lista de novo produz exatamente
// os mesmos filtros e atualizações: o estado final não muda.
func modelosDeUpsert(registros []models.Presenca) []mongo.WriteModel {
	modelos := make([]mongo.WriteModel, 0, len(registros))
	for _, r := range registros {
		filtro := bson.M{"grupoId": r.GrupoID, "membroId": r.MembroID, "data": r.Data}
		atualizacao := bson.M{"$set": bson.M{"presente": r.Presente}}
		modelos = append(modelos, mongo.NewUpdateOneModel().
			SetFilter(filtro).
			SetUpdate(atualizacao).
			SetUpsert(true))
	}
	return modelos
}

// SalvarListaPresenca grava a folha de marcação de um grupo em uma data.
// Cada par (membro, presente) vira um upsert na tripla (grupo, membro, data);
// membro do roster ausente de entradas fica sem registro ("não marcado" —
// o store nunca inventa presente=false). Salvar de novo sobrescreve.
func SalvarListaPresenca(grupoID, data string, entradas map[string]bool) error {
	gID, err := primitive.ObjectIDFromHex(grupoID)
	if err != nil {
		return fmt.Errorf("%w: id de grupo inválido", utils.ErrEntradaInvalida)
	}
	if _, err := time.Parse("2006-01-02", data); err != nil {
		return fmt.Errorf("%w: data inválida: %s", utils.ErrEntradaInvalida, data)
	}

	// valida contra o roster vivo antes de gravar qualquer coisa
	roster, err := grupos.GetRoster(grupoID)
	if err != nil {
		return err
	}

	registros, err := prepararRegistros(gID, data, roster, entradas)
	if err != nil {
		return err
	}

	// serializa gravações concorrentes do mesmo encontro
	mu := travaDoEncontro(grupoID, data)
	mu.Lock()
	defer mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := DB.PresencaCollection.BulkWrite(ctx, modelosDeUpsert(registros), options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	// registra o encontro uma única vez por (grupo, data)
	_, err = DB.EncontroCollection.UpdateOne(ctx,
		bson.M{"grupoId": gID, "data": data},
		bson.M{"$setOnInsert": bson.M{"grupoId": gID, "data": data}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	// snapshot e cache seguem a gravação; falha aqui não desfaz a lista salva
	if err := resumos.AtualizarResumo(gID, data); err != nil {
		log.Printf("⚠️ Warning: Failed to refresh resumo for grupo %s on %s: %v", grupoID, data, err)
	}
	utils.BumpRelatorioCache(grupoID)

	return nil
}

// BuscarRegistros devolve os registros de presença de um grupo, filtráveis por
// membro e intervalo inclusivo de datas, ordenados por data e membroId
// ascendentes para relatórios reproduzíveis.
func BuscarRegistros(grupoID, membroID, de, ate string) ([]models.Presenca, error) {
	gID, err := primitive.ObjectIDFromHex(grupoID)
	if err != nil {
		return nil, fmt.Errorf("%w: id de grupo inválido", utils.ErrEntradaInvalida)
	}

	filtro := bson.M{"grupoId": gID}
	if membroID != "" {
		mID, err := primitive.ObjectIDFromHex(membroID)
		if err != nil {
			return nil, fmt.Errorf("%w: id de membro inválido", utils.ErrEntradaInvalida)
		}
		filtro["membroId"] = mID
	}
	if intervalo := filtroDeDatas(de, ate); len(intervalo) > 0 {
		filtro["data"] = intervalo
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "data", Value: 1}, {Key: "membroId", Value: 1}})
	cursor, err := DB.PresencaCollection.Find(ctx, filtro, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	defer cursor.Close(ctx)

	var registros []models.Presenca
	if err := cursor.All(ctx, &registros); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	return registros, nil
}

// BuscarEncontros devolve as datas de encontro do grupo no intervalo,
// em ordem crescente
func BuscarEncontros(grupoID, de, ate string) ([]string, error) {
	gID, err := primitive.ObjectIDFromHex(grupoID)
	if err != nil {
		return nil, fmt.Errorf("%w: id de grupo inválido", utils.ErrEntradaInvalida)
	}

	filtro := bson.M{"grupoId": gID}
	if intervalo := filtroDeDatas(de, ate); len(intervalo) > 0 {
		filtro["data"] = intervalo
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "data", Value: 1}})
	cursor, err := DB.EncontroCollection.Find(ctx, filtro, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	defer cursor.Close(ctx)

	var encontros []models.Encontro
	if err := cursor.All(ctx, &encontros); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	datas := make([]string, 0, len(encontros))
	for _, e := range encontros {
		datas = append(datas, e.Data)
	}
	return datas, nil
}

// filtroDeDatas monta o filtro inclusivo de intervalo; datas ISO comparam
// corretamente como string
func filtroDeDatas(de, ate string) bson.M {
	intervalo := bson.M{}
	if de != "" {
		intervalo["$gte"] = de
	}
	if ate != "" {
		intervalo["$lte"] = ate
	}
	return intervalo
}
