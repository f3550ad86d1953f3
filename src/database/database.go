package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // evita reconectar em chamadas repetidas
	connectErr error

	GrupoCollection          *mongo.Collection
	MembroCollection         *mongo.Collection
	PresencaCollection       *mongo.Collection
	EncontroCollection       *mongo.Collection
	ResumoPresencaCollection *mongo.Collection
	ExportacaoCollection     *mongo.Collection
)

// ConnectMongoDB conecta ao MongoDB uma única vez e resolve as collections
func ConnectMongoDB() error {

	// carrega variáveis do .env quando existir
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		GrupoCollection = GetCollection("SGIDB", "grupos")
		MembroCollection = GetCollection("SGIDB", "membros")
		PresencaCollection = GetCollection("SGIDB", "presencas")
		EncontroCollection = GetCollection("SGIDB", "encontros")
		ResumoPresencaCollection = GetCollection("SGIDB", "resumosPresenca")
		ExportacaoCollection = GetCollection("SGIDB", "exportacoes")

		log.Println("✅ MongoDB connected successfully")
		ListDatabases()
	})

	return connectErr
}

// ListDatabases lista os bancos disponíveis (diagnóstico de conexão)
func ListDatabases() {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}

	dbs, err := client.ListDatabaseNames(context.TODO(), bson.M{})
	if err != nil {
		log.Fatal("❌ Error listing databases:", err)
	}

	fmt.Println("📌 Databases in MongoDB:")
	for _, db := range dbs {
		fmt.Println(" -", db)
	}
}

// GetCollection retorna uma collection do MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
