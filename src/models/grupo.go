package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Grupo grupo de crescimento
// Os metadados de agenda (dia, horário, local) são opacos para o motor de
// frequência; só o id e o roster importam para os relatórios.
type Grupo struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nome      string             `json:"nome" bson:"nome" validate:"required" example:"GC Juventude"`
	DiaSemana string             `json:"diaSemana" bson:"diaSemana" example:"domingo"`
	Horario   string             `json:"horario" bson:"horario" example:"19:00"`
	Local     string             `json:"local" bson:"local" example:"Salão 2"`
}
