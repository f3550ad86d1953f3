package jobs

import (
	"log"

	DB "Backend-SGI/src/database"
	"Backend-SGI/src/services/relatorios"
	"Backend-SGI/src/services/resumos"

	"github.com/hibiken/asynq"
)

// StartWorker sobe o worker Asynq com os handlers de exportação e de
// recálculo de resumos. Sem Redis o worker simplesmente não inicia e as
// exportações são resolvidas inline pelos serviços.
func StartWorker() {
	if DB.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	relatorios.RegisterHandlers(mux)
	resumos.RegisterHandlers(mux)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Background worker started")
}
