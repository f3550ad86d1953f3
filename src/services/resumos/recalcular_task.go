package resumos

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

const TypeRecalcularResumos = "resumo:recalcular"

type RecalcularResumosPayload struct {
	GrupoID string `json:"grupo_id"`
}

func NewRecalcularResumosTask(grupoID string) (*asynq.Task, error) {
	payload, err := json.Marshal(RecalcularResumosPayload{GrupoID: grupoID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRecalcularResumos, payload), nil
}

// HandleRecalcularResumosTask refaz os snapshots do grupo em background
func HandleRecalcularResumosTask(ctx context.Context, t *asynq.Task) error {
	var payload RecalcularResumosPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	if err := RecalcularResumos(payload.GrupoID); err != nil {
		log.Println("❌ Failed to recalculate resumos:", err)
		return err
	}

	log.Println("✅ Resumos recalculated for grupo:", payload.GrupoID)
	return nil
}

// RegisterHandlers liga os handlers deste pacote no mux do worker
func RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeRecalcularResumos, HandleRecalcularResumosTask)
}
