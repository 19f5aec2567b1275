package main

import (
	"log"

	"waste-pickup-server/database"
	"waste-pickup-server/models"
)

func strPtr(s string) *string { return &s }

func seedCenters() error {
	db := database.GetDB()

	centers := []models.Center{
		{
			Name:        "Central Collection Yard",
			Address:     "12 Industrial Estate Road, Sector 4",
			Latitude:    12.971600,
			Longitude:   77.594600,
			ContactInfo: strPtr("+91 80 4000 1234"),
		},
		{
			Name:        "North Transfer Station",
			Address:     "88 Ring Road North, near Tollgate",
			Latitude:    13.035400,
			Longitude:   77.597000,
			ContactInfo: strPtr("+91 80 4000 5678"),
		},
		{
			Name:        "East Recycling Depot",
			Address:     "5 Old Market Lane, East Zone",
			Latitude:    12.978300,
			Longitude:   77.660800,
			ContactInfo: nil,
		},
		{
			Name:        "South Drop-off Point",
			Address:     "41 Lakeside Avenue, South Zone",
			Latitude:    12.911700,
			Longitude:   77.584600,
			ContactInfo: strPtr("+91 80 4000 9012"),
		},
	}

	for _, center := range centers {
		var existing models.Center
		if err := db.Where("name = ?", center.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&center).Error; err != nil {
			return err
		}
		log.Printf("✅ Seeded center: %s", center.Name)
	}

	return nil
}
