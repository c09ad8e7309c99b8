package database

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"farmacia/internal/models"
)

//go:embed seed.yaml
var seedYAML []byte

type Catalog struct {
	Especialidades []string `yaml:"especialidades"`
	Tipos          []string `yaml:"tipos"`
}

func DefaultCatalog() (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(seedYAML, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse seed catalog: %w", err)
	}
	return c, nil
}

// Seed inserts the catalog entries whose description is not stored yet and
// reports how many rows were created.
func Seed(ctx context.Context, db *gorm.DB, c Catalog) (int, error) {
	created := 0
	tx := db.WithContext(ctx)

	for _, desc := range c.Especialidades {
		var existing models.Especialidad
		err := tx.Where("descripcion_esp = ?", desc).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("failed to look up especialidad %q: %w", desc, err)
		}
		if err := tx.Create(&models.Especialidad{DescripcionEsp: desc}).Error; err != nil {
			return created, fmt.Errorf("failed to create especialidad %q: %w", desc, err)
		}
		created++
	}

	for _, desc := range c.Tipos {
		var existing models.TipoMedic
		err := tx.Where("descripcion = ?", desc).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("failed to look up tipo %q: %w", desc, err)
		}
		if err := tx.Create(&models.TipoMedic{Descripcion: desc}).Error; err != nil {
			return created, fmt.Errorf("failed to create tipo %q: %w", desc, err)
		}
		created++
	}

	log.Printf("Seed data created: %d new row(s)", created)
	return created, nil
}
