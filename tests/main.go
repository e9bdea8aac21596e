package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"reservabot/config"
	"reservabot/database"
	"reservabot/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seed utility: wipes and repopulates the resources collection with the
// rooms the default alias table points at.
func main() {
	config.LoadConfig()
	database.InitDB()
	resourceColl := database.Database().Collection("resources")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := resourceColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear resources collection: %v", err)
	}

	seed := []struct {
		Name         string
		PricePerHour float64
		Description  string
	}{
		{"Sala A", 80.0, "Sala de ensaio compacta, ideal para duos e trios."},
		{"Sala B", 80.0, "Sala de ensaio com bateria e dois amplificadores."},
		{"Estúdio Grande", 150.0, "Estúdio de gravação completo com sala técnica."},
		{"Estúdio Pequeno", 100.0, "Estúdio de gravação para voz e instrumentos solo."},
	}

	var resources []interface{}
	now := time.Now()
	for _, s := range seed {
		resources = append(resources, models.Resource{
			ID:           uuid.New().String(),
			Name:         s.Name,
			Slug:         slugify(s.Name),
			PricePerHour: s.PricePerHour,
			Description:  s.Description,
			CreatedAt:    now,
		})
	}

	insertResult, err := resourceColl.InsertMany(ctx, resources)
	if err != nil {
		log.Fatalf("Failed to insert resources: %v", err)
	}
	fmt.Printf("Inserted resource IDs: %v\n", insertResult.InsertedIDs)
}

func slugify(name string) string {
	s := strings.ToLower(name)
	replacer := strings.NewReplacer(" ", "-", "ú", "u", "á", "a", "é", "e", "í", "i", "ó", "o", "ã", "a", "ç", "c")
	return replacer.Replace(s)
}
