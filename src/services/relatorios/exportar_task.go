package relatorios

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

const TypeExportarRelatorio = "relatorio:exportar"

type ExportarRelatorioPayload struct {
	ExportacaoID string `json:"exportacao_id"`
}

func NewExportarRelatorioTask(exportacaoID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ExportarRelatorioPayload{ExportacaoID: exportacaoID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeExportarRelatorio, payload), nil
}

// HandleExportarRelatorioTask monta o payload da exportação em background
func HandleExportarRelatorioTask(ctx context.Context, t *asynq.Task) error {
	var payload ExportarRelatorioPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	if err := ProcessarExportacao(payload.ExportacaoID); err != nil {
		log.Println("❌ Failed to process export:", err)
		return err
	}

	log.Println("✅ Export ready:", payload.ExportacaoID)
	return nil
}

// RegisterHandlers liga os handlers deste pacote no mux do worker
func RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeExportarRelatorio, HandleExportarRelatorioTask)
}
