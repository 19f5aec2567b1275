package main

import (
	"log"

	_ "github.com/lib/pq"

	"waste-pickup-server/database"
	"waste-pickup-server/models"
)

func seedWasteTypes() error {
	db := database.GetDB()

	wasteTypes := []models.WasteType{
		{
			Name:        "Plastic",
			Description: "Bottles, containers, packaging and other household plastics",
			PricePerKg:  10.00,
		},
		{
			Name:        "Paper",
			Description: "Newspapers, cardboard, office paper and books",
			PricePerKg:  5.00,
		},
		{
			Name:        "Metal",
			Description: "Aluminium cans, steel scrap and other metal waste",
			PricePerKg:  25.00,
		},
		{
			Name:        "Glass",
			Description: "Bottles and jars, any colour",
			PricePerKg:  3.50,
		},
		{
			Name:        "E-Waste",
			Description: "Old electronics, cables, batteries and small appliances",
			PricePerKg:  40.00,
		},
		{
			Name:        "Organic",
			Description: "Kitchen and garden waste suitable for composting",
			PricePerKg:  2.00,
		},
	}

	for _, wasteType := range wasteTypes {
		var existing models.WasteType
		if err := db.Where("name = ?", wasteType.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&wasteType).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded waste type: %s", wasteType.Name)
	}

	return nil
}
