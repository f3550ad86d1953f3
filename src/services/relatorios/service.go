// Package relatorios junta roster, registros e o motor de frequência nos dois
// formatos consumidos pelo painel: a lista de presença do dia e o relatório
// histórico por período.
package relatorios

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	DB "Backend-SGI/src/database"
	"Backend-SGI/src/models"
	"Backend-SGI/src/services/grupos"
	"Backend-SGI/src/services/presencas"
	"Backend-SGI/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetListaPresenca monta a folha de marcação de um grupo para a data pedida.
// Sem nenhuma lista salva na data, volta o roster inteiro como não marcado.
func GetListaPresenca(grupoID, data string) (*models.ListaPresencaView, error) {
	if _, err := time.Parse("2006-01-02", data); err != nil {
		return nil, fmt.Errorf("%w: data inválida: %s", utils.ErrEntradaInvalida, data)
	}

	roster, err := grupos.GetRoster(grupoID)
	if err != nil {
		return nil, err
	}

	registros, err := presencas.BuscarRegistros(grupoID, "", data, data)
	if err != nil {
		return nil, err
	}

	gID, _ := primitive.ObjectIDFromHex(grupoID)
	lista := MontarListaPresenca(gID, data, roster, registros)
	return &lista, nil
}

// GetRelatorioHistorico monta o relatório de frequência do período.
// Sem de/ate usa o mês corrente, como o filtro "Mês Atual" do painel.
// Período sem dados volta um relatório vazio válido, nunca erro.
func GetRelatorioHistorico(grupoID, de, ate string) (*models.RelatorioHistorico, error) {
	de, ate, err := normalizarPeriodo(de, ate)
	if err != nil {
		return nil, err
	}

	chave := fmt.Sprintf("relatorio:%s:%d:%s:%s", grupoID, utils.RelatorioCacheVersion(grupoID), de, ate)
	if payload, ok := utils.GetCachedRelatorio(chave); ok {
		var relatorio models.RelatorioHistorico
		if err := json.Unmarshal(payload, &relatorio); err == nil {
			return &relatorio, nil
		}
	}

	roster, err := grupos.GetRoster(grupoID)
	if err != nil {
		return nil, err
	}
	registros, err := presencas.BuscarRegistros(grupoID, "", de, ate)
	if err != nil {
		return nil, err
	}
	encontros, err := presencas.BuscarEncontros(grupoID, de, ate)
	if err != nil {
		return nil, err
	}

	gID, _ := primitive.ObjectIDFromHex(grupoID)
	relatorio := MontarRelatorioHistorico(gID, de, ate, roster, registros, encontros)

	if payload, err := json.Marshal(relatorio); err == nil {
		utils.StoreCachedRelatorio(chave, payload)
	}

	return &relatorio, nil
}

// SolicitarExportacao registra um pedido de exportação e enfileira a montagem
// do payload. A renderização em PDF/planilha é do adaptador externo; aqui só
// fica o relatório serializado aguardando coleta.
func SolicitarExportacao(grupoID, de, ate, formato string) (*models.Exportacao, error) {
	if formato == "" {
		formato = "pdf"
	}
	if formato != "pdf" && formato != "xlsx" {
		return nil, fmt.Errorf("%w: formato não suportado: %s", utils.ErrEntradaInvalida, formato)
	}

	de, ate, err := normalizarPeriodo(de, ate)
	if err != nil {
		return nil, err
	}

	// o grupo precisa existir antes de aceitar o pedido
	if _, err := grupos.GetGrupoByID(grupoID); err != nil {
		return nil, err
	}
	gID, _ := primitive.ObjectIDFromHex(grupoID)

	exportacao := models.Exportacao{
		ID:       uuid.NewString(),
		GrupoID:  gID,
		De:       de,
		Ate:      ate,
		Formato:  formato,
		Status:   models.ExportacaoPendente,
		CriadoEm: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := DB.ExportacaoCollection.InsertOne(ctx, exportacao); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}

	if DB.AsynqClient != nil {
		task, err := NewExportarRelatorioTask(exportacao.ID)
		if err != nil {
			return nil, err
		}
		if _, err := DB.AsynqClient.Enqueue(task); err != nil {
			log.Println("❌ Failed to enqueue export task:", err)
			return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
		}
	} else {
		// sem Redis (dev mode) a exportação é resolvida na hora
		if err := ProcessarExportacao(exportacao.ID); err != nil {
			return nil, err
		}
		return GetExportacao(exportacao.ID)
	}

	return &exportacao, nil
}

// ProcessarExportacao monta o relatório do pedido e grava o payload final
func ProcessarExportacao(exportacaoID string) error {
	exportacao, err := GetExportacao(exportacaoID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	relatorio, err := GetRelatorioHistorico(exportacao.GrupoID.Hex(), exportacao.De, exportacao.Ate)
	if err != nil {
		_, updErr := DB.ExportacaoCollection.UpdateOne(ctx,
			bson.M{"_id": exportacaoID},
			bson.M{"$set": bson.M{"status": models.ExportacaoErro, "mensagem": err.Error()}},
		)
		if updErr != nil {
			log.Println("❌ Failed to mark export as failed:", updErr)
		}
		return err
	}

	agora := time.Now()
	_, err = DB.ExportacaoCollection.UpdateOne(ctx,
		bson.M{"_id": exportacaoID},
		bson.M{"$set": bson.M{
			"status":    models.ExportacaoPronta,
			"relatorio": relatorio,
			"prontoEm":  agora,
		}},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	return nil
}

// GetExportacao busca um pedido de exportação pelo id
func GetExportacao(id string) (*models.Exportacao, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var exportacao models.Exportacao
	err := DB.ExportacaoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&exportacao)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrArmazenamentoIndisponivel, err)
	}
	return &exportacao, nil
}

// normalizarPeriodo valida o intervalo e aplica o mês corrente como padrão
func normalizarPeriodo(de, ate string) (string, string, error) {
	if de == "" && ate == "" {
		agora := time.Now()
		inicio := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
		fim := inicio.AddDate(0, 1, -1)
		return inicio.Format("2006-01-02"), fim.Format("2006-01-02"), nil
	}
	if de != "" {
		if _, err := time.Parse("2006-01-02", de); err != nil {
			return "", "", fmt.Errorf("%w: data inicial inválida: %s", utils.ErrEntradaInvalida, de)
		}
	}
	if ate != "" {
		if _, err := time.Parse("2006-01-02", ate); err != nil {
			return "", "", fmt.Errorf("%w: data final inválida: %s", utils.ErrEntradaInvalida, ate)
		}
	}
	if de != "" && ate != "" && de > ate {
		return "", "", fmt.Errorf("%w: data inicial posterior à final", utils.ErrEntradaInvalida)
	}
	return de, ate, nil
}
